package appstate

import (
	"image"
	"image/draw"
	"log"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/shapes"
)

type resizer interface {
	Resize(w, h int) error
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	defer a.notifyClose()

	tbw := toolbarWidthFor()
	sw, sh := a.Surface.Size()
	width := sw + tbw
	height := sh + bottomHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()

	h := newHost(a, tbw, width, height)
	h.repaint = func() { w.Send(paint.Event{}) }

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			h.resize(e.WidthPx, e.HeightPx)
			w.Send(paint.Event{})
		case paint.Event:
			h.paint(s, w)
		case mouse.Event:
			h.mouse(e)
		case key.Event:
			if h.key(e) {
				return
			}
		}
	}
}

// host translates window events into gesture events and toolbar actions.
// It runs on the window's event goroutine.
type host struct {
	app     *AppState
	layout  layout
	width   int
	height  int
	hover   hover
	hoverSc int
	drawn   bool

	shortcuts    []*LabelButton
	message      string
	messageUntil time.Time

	actions        map[string]func()
	keyboardAction map[KeyShortcut]string
	repaint        func()
	quit           bool
}

func newHost(a *AppState, toolbarWidth, width, height int) *host {
	h := &host{app: a, width: width, height: height, hoverSc: -1, repaint: func() {}}
	h.layout = newLayout(width, height, toolbarWidth, len(shapes.Tools()), paletteLen(), widthsLen())
	h.actions = map[string]func(){}
	h.keyboardAction = map[KeyShortcut]string{}
	register := func(name string, keys []KeyShortcut, fn func()) {
		h.actions[name] = fn
		for _, sc := range keys {
			h.keyboardAction[sc] = name
		}
	}
	register("save", []KeyShortcut{{Rune: 's', Modifiers: key.ModControl}}, func() {
		path, err := a.Save()
		if err != nil {
			log.Print(err)
			h.flash("save failed")
			return
		}
		h.flash("saved " + path)
	})
	register("copy", []KeyShortcut{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		if err := a.Copy(); err != nil {
			log.Print(err)
			h.flash("copy failed")
			return
		}
		h.flash("image copied to clipboard")
	})
	register("clear", []KeyShortcut{{Code: key.CodeDeleteForward}, {Code: key.CodeDeleteBackspace}, {Rune: 0x7f}, {Rune: 0x08}}, func() {
		a.Clear()
	})
	register("fill", []KeyShortcut{{Rune: 'f'}}, a.ToggleFill)
	register("quit", []KeyShortcut{{Rune: 'q'}, {Code: key.CodeEscape}, {Rune: 0x1b}}, func() { h.quit = true })
	for _, t := range shapes.Tools() {
		tool := t
		if r, ok := toolKeys[tool]; ok {
			register("tool:"+tool.String(), []KeyShortcut{{Rune: r}}, func() { a.SetTool(tool) })
		}
	}
	return h
}

func (h *host) flash(msg string) {
	log.Print(msg)
	h.message = msg
	h.messageUntil = time.Now().Add(2 * time.Second)
}

func (h *host) trigger(name string) {
	if fn, ok := h.actions[name]; ok {
		fn()
	}
	h.repaint()
}

// resize follows the window size. The surface only tracks it until the first
// stroke so a drawing is never wiped by a later resize.
func (h *host) resize(w, ht int) {
	h.width, h.height = w, ht
	h.layout = newLayout(w, ht, h.layout.toolbarWidth, len(shapes.Tools()), paletteLen(), widthsLen())
	if h.drawn {
		return
	}
	r, ok := h.app.Surface.(resizer)
	if !ok {
		return
	}
	cw, ch := h.layout.canvasSize()
	if err := r.Resize(cw, ch); err != nil {
		log.Printf("resize surface: %v", err)
	}
}

func (h *host) toCanvas(x, y float32) canvas.Point {
	return canvas.Pt(float64(x)-float64(h.layout.canvas.Min.X), float64(y)-float64(h.layout.canvas.Min.Y))
}

func (h *host) mouse(e mouse.Event) {
	if h.message != "" && time.Now().Before(h.messageUntil) && e.Direction == mouse.DirPress {
		h.messageUntil = time.Time{}
		h.repaint()
		return
	}
	p := image.Pt(int(e.X), int(e.Y))
	reg, idx := h.layout.hit(p)
	machine := h.app.Gesture()

	if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease {
		if machine.Active() {
			machine.PointerUp()
			h.repaint()
			return
		}
	}

	if reg == regionCanvas {
		switch {
		case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
			h.drawn = true
			machine.PointerDown(h.toCanvas(e.X, e.Y))
			h.repaint()
		case e.Direction == mouse.DirNone && machine.Active():
			machine.PointerMove(h.toCanvas(e.X, e.Y))
			h.repaint()
		}
		if h.hover.region != regionNone || h.hoverSc != -1 {
			h.hover = hover{region: regionNone, index: -1}
			h.hoverSc = -1
			h.repaint()
		}
		return
	}

	press := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress
	if reg == regionShortcut {
		h.hoverSc = -1
		for i, sc := range h.shortcuts {
			if p.In(sc.Rect()) {
				h.hoverSc = i
				if press {
					sc.Activate()
				}
				break
			}
		}
		if e.Direction == mouse.DirNone {
			h.repaint()
		}
		return
	}
	h.hoverSc = -1

	if press {
		switch reg {
		case regionTool:
			h.app.SetTool(shapes.Tools()[idx])
		case regionSwatch:
			h.app.SetColor(paletteColorAt(idx))
		case regionWidth:
			h.app.SetWidth(float64(widthAt(idx)))
		case regionFill:
			h.app.ToggleFill()
		}
	}
	next := hover{region: reg, index: idx}
	if next != h.hover || press {
		h.hover = next
		h.repaint()
	}
}

// key handles a key event and reports whether the window should close.
func (h *host) key(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	if action, ok := h.keyboardAction[shortcutOf(e)]; ok {
		h.trigger(action)
	}
	return h.quit
}

// shortcutOf normalises a key event: printable keys match by lower-case rune
// and the control modifier, other keys by code alone.
func shortcutOf(e key.Event) KeyShortcut {
	if e.Rune > 0 {
		return KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers & key.ModControl}
	}
	return KeyShortcut{Code: e.Code}
}

func (h *host) paint(s screen.Screen, w screen.Window) {
	b, err := s.NewBuffer(image.Point{h.width, h.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()
	h.render(dst)
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func (h *host) render(dst *image.RGBA) {
	th := h.app.Theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)
	img := h.app.Surface.Image()
	draw.Draw(dst, h.layout.canvas.Intersect(img.Bounds().Add(h.layout.canvas.Min)), img, image.Point{}, draw.Src)
	st := h.app.Style()
	drawToolbar(dst, h.layout, th, st, h.hover)
	h.shortcuts = drawShortcuts(dst, h.layout, th, st, h.hoverSc, h.trigger)
	drawMessage(dst, th, h.message, h.messageUntil)
}
