package appstate

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/clipboard"
	"github.com/example/sketchpad/internal/export"
	"github.com/example/sketchpad/internal/gesture"
	"github.com/example/sketchpad/internal/shapes"
	"github.com/example/sketchpad/internal/theme"
)

// AppState holds the tool selection and the drawing surface shown by the
// desktop window. Style is safe to call from any goroutine.
type AppState struct {
	Surface    canvas.Surface
	Width      int
	Height     int
	Background color.RGBA
	SaveDir    string
	Export     export.Options
	Theme      *theme.Theme

	settingsMu sync.Mutex
	style      shapes.Style
	settingsFn func(shapes.Style)

	machine *gesture.Machine
	now     func() time.Time

	onSave    func(path string)
	onCopy    func(img image.Image)
	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSurface draws onto s instead of a surface created by the window.
func WithSurface(s canvas.Surface) Option { return func(a *AppState) { a.Surface = s } }

// WithSize sets the initial drawing area size in pixels.
func WithSize(w, h int) Option { return func(a *AppState) { a.Width, a.Height = w, h } }

// WithBackground sets the surface background and eraser colour.
func WithBackground(c color.RGBA) Option { return func(a *AppState) { a.Background = c } }

// WithTool sets the initially selected tool.
func WithTool(t shapes.Tool) Option { return func(a *AppState) { a.style.Tool = t } }

// WithColor sets the initial drawing colour.
func WithColor(c color.RGBA) Option { return func(a *AppState) { a.style.Color = c } }

// WithWidth sets the initial stroke width.
func WithWidth(w float64) Option { return func(a *AppState) { a.style.Width = w } }

// WithFill sets the initial fill mode.
func WithFill(fill bool) Option { return func(a *AppState) { a.style.Fill = fill } }

// WithSaveDir sets the directory exports are written to.
func WithSaveDir(dir string) Option { return func(a *AppState) { a.SaveDir = dir } }

// WithExport sets the export format and quality.
func WithExport(opts export.Options) Option { return func(a *AppState) { a.Export = opts } }

// WithTheme sets the window colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithClock overrides the time source used for export names.
func WithClock(now func() time.Time) Option { return func(a *AppState) { a.now = now } }

// WithSettingsListener registers a callback for when drawing settings change.
func WithSettingsListener(fn func(shapes.Style)) Option {
	return func(a *AppState) { a.settingsFn = fn }
}

// WithOnSave registers a callback invoked with the path of each export.
func WithOnSave(fn func(path string)) Option { return func(a *AppState) { a.onSave = fn } }

// WithOnCopy registers a callback invoked after the drawing is copied.
func WithOnCopy(fn func(img image.Image)) Option { return func(a *AppState) { a.onCopy = fn } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Width:      800,
		Height:     600,
		Background: canvas.DefaultBackground,
		style:      shapes.DefaultStyle(),
		now:        time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if !a.style.Tool.Valid() {
		a.style.Tool = shapes.ToolBrush
	}
	if a.style.Width <= 0 {
		a.style.Width = shapes.DefaultWidth
	}
	if a.Surface == nil {
		a.Surface = canvas.NewRaster(a.Width, a.Height, a.Background)
	}
	a.machine = gesture.New(a.Surface, a)
	return a
}

// Style returns a copy of the current selection.
func (a *AppState) Style() shapes.Style {
	a.settingsMu.Lock()
	defer a.settingsMu.Unlock()
	return a.style
}

// Gesture returns the gesture machine driving the surface.
func (a *AppState) Gesture() *gesture.Machine { return a.machine }

// ApplyStyle replaces the whole selection.
func (a *AppState) ApplyStyle(st shapes.Style) {
	a.update(func(cur *shapes.Style) { *cur = st })
}

// SetTool selects the drawing tool. Unknown tools are ignored.
func (a *AppState) SetTool(t shapes.Tool) {
	if !t.Valid() {
		return
	}
	a.update(func(st *shapes.Style) { st.Tool = t })
}

// SetColor selects the drawing colour.
func (a *AppState) SetColor(c color.RGBA) {
	a.update(func(st *shapes.Style) { st.Color = c })
}

// SetWidth selects the stroke width. Non-positive widths are ignored.
func (a *AppState) SetWidth(w float64) {
	if w <= 0 {
		return
	}
	a.update(func(st *shapes.Style) { st.Width = w })
}

// SetFill turns fill mode on or off.
func (a *AppState) SetFill(fill bool) {
	a.update(func(st *shapes.Style) { st.Fill = fill })
}

// ToggleFill flips fill mode.
func (a *AppState) ToggleFill() {
	a.update(func(st *shapes.Style) { st.Fill = !st.Fill })
}

func (a *AppState) update(fn func(*shapes.Style)) {
	a.settingsMu.Lock()
	fn(&a.style)
	st := a.style
	listener := a.settingsFn
	a.settingsMu.Unlock()

	if listener != nil {
		listener(st)
	}
}

// Clear wipes the surface to its background colour.
func (a *AppState) Clear() {
	a.Surface.Clear()
}

// Save exports the surface into SaveDir under a timestamped name.
func (a *AppState) Save() (string, error) {
	path, err := export.Save(a.SaveDir, a.Surface, a.Export, a.now())
	if err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	log.Printf("saved %s", path)
	if a.onSave != nil {
		a.onSave(path)
	}
	return path, nil
}

// Copy places the current pixels on the clipboard.
func (a *AppState) Copy() error {
	img := a.Surface.Image()
	if err := clipboard.WriteImage(img); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if a.onCopy != nil {
		a.onCopy(img)
	}
	return nil
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}
