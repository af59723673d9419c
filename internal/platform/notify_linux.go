//go:build linux

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest = "org.freedesktop.Notifications"
	notifyPath = "/org/freedesktop/Notifications"
)

// Notify sends a desktop notification over the session bus using the
// Freedesktop.org notification interface.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	icon := opts.icon()
	call := conn.Object(notifyDest, notifyPath).Call(notifyDest+".Notify", 0,
		opts.appName(), uint32(0), icon, title, body, []string{}, notifyHints(icon), opts.timeoutMillis())
	return call.Err
}

// notifyHints marks drawing notifications as transfer events and passes the
// exported image so servers that ignore app_icon can still show it.
func notifyHints(icon string) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"category": dbus.MakeVariant("transfer.complete"),
	}
	if icon != "" {
		hints["image-path"] = dbus.MakeVariant(icon)
	}
	return hints
}
