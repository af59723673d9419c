package platform

import (
	"path/filepath"
	"strings"
	"time"
)

// DefaultAppName is reported to notification centers that group by sender.
const DefaultAppName = "Sketchpad"

// DefaultTimeout is how long a notification stays on screen where the
// platform lets the sender choose.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an exported drawing or preview the
	// notification should show. Files that are not raster images are ignored.
	IconPath string
	// AppName overrides DefaultAppName.
	AppName string
	// Timeout overrides DefaultTimeout. Negative values leave the choice to
	// the notification center.
	Timeout time.Duration
}

func (o Options) appName() string {
	if name := strings.TrimSpace(o.AppName); name != "" {
		return name
	}
	return DefaultAppName
}

// timeoutMillis follows the Freedesktop convention where -1 means the server
// default.
func (o Options) timeoutMillis() int32 {
	switch {
	case o.Timeout < 0:
		return -1
	case o.Timeout == 0:
		return int32(DefaultTimeout / time.Millisecond)
	}
	return int32(o.Timeout / time.Millisecond)
}

// icon returns IconPath when it names an image notification centers can
// render. Drawings exported as PDF have no usable icon.
func (o Options) icon() string {
	path := strings.TrimSpace(o.IconPath)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return path
	}
	return ""
}
