package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"time"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/sketchpad/internal/shapes"
	"github.com/example/sketchpad/internal/theme"
)

const (
	title        = "Sketchpad"
	bottomHeight = 24
	buttonHeight = 24
	swatchSize   = 16
	swatchStep   = 18
	widthHeight  = 16
)

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 32, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// toolKeys are the single key shortcuts that select each tool.
var toolKeys = map[shapes.Tool]rune{
	shapes.ToolBrush:     'b',
	shapes.ToolPencil:    'p',
	shapes.ToolEraser:    'e',
	shapes.ToolLine:      'l',
	shapes.ToolArrow:     'a',
	shapes.ToolRectangle: 'r',
	shapes.ToolSquare:    's',
	shapes.ToolCircle:    'c',
	shapes.ToolTriangle:  't',
	shapes.ToolPentagon:  '5',
	shapes.ToolHexagon:   '6',
}

// ToolKey returns the key that selects t in the window, or 0 when it has none.
func ToolKey(t shapes.Tool) rune { return toolKeys[t] }

func toolLabel(t shapes.Tool) string {
	name := t.String()
	if r, ok := toolKeys[t]; ok {
		return fmt.Sprintf("%c:%s", unicode.ToUpper(r), name)
	}
	return name
}

// toolbarWidthFor fits the program title and every tool label.
func toolbarWidthFor() int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	max := d.MeasureString(title).Ceil() + 8 // padding
	for _, t := range shapes.Tools() {
		if w := d.MeasureString(toolLabel(t)).Ceil() + 8; w > max {
			max = w
		}
	}
	if floor := 4 * swatchStep; max < floor {
		max = floor
	}
	return max
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState, th *theme.Theme)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// LabelButton is a toolbar or status bar button with a text label.
type LabelButton struct {
	label  string
	rect   image.Rectangle
	action func()
}

var _ Button = (*LabelButton)(nil)

func (b *LabelButton) Draw(dst *image.RGBA, state ButtonState, th *theme.Theme) {
	bg, fg := th.ButtonBackground, th.ButtonText
	switch state {
	case StateHover:
		bg, fg = th.ButtonBackgroundHover, th.ButtonTextHover
	case StatePressed:
		bg, fg = th.ButtonBackgroundPress, th.ButtonTextPress
	}
	draw.Draw(dst, b.rect, &image.Uniform{bg}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: basicfont.Face7x13,
		Dot: fixed.P(b.rect.Min.X+4, b.rect.Min.Y+(b.rect.Dy()+10)/2)}
	d.DrawString(b.label)
}

func (b *LabelButton) Rect() image.Rectangle { return b.rect }

func (b *LabelButton) SetRect(r image.Rectangle) { b.rect = r }

func (b *LabelButton) Activate() {
	if b.action != nil {
		b.action()
	}
}

// region identifies what a window pixel belongs to.
type region int

const (
	regionNone region = iota
	regionCanvas
	regionTool
	regionSwatch
	regionWidth
	regionFill
	regionShortcut
)

// layout places the toolbar, status bar and drawing area in a window.
type layout struct {
	toolbarWidth int
	tools        []image.Rectangle
	swatches     []image.Rectangle
	widths       []image.Rectangle
	fill         image.Rectangle
	status       image.Rectangle
	canvas       image.Rectangle
}

func newLayout(winW, winH, toolbarWidth, nTools, nColors, nWidths int) layout {
	l := layout{toolbarWidth: toolbarWidth}
	y := buttonHeight // title row
	for i := 0; i < nTools; i++ {
		l.tools = append(l.tools, image.Rect(0, y, toolbarWidth, y+buttonHeight))
		y += buttonHeight
	}
	y += 4
	x := 4
	for i := 0; i < nColors; i++ {
		l.swatches = append(l.swatches, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchStep
		if x+swatchSize > toolbarWidth {
			x = 4
			y += swatchStep
		}
	}
	if x != 4 {
		y += swatchStep
	}
	y += 4
	for i := 0; i < nWidths; i++ {
		l.widths = append(l.widths, image.Rect(0, y, toolbarWidth, y+widthHeight))
		y += widthHeight
	}
	y += 4
	l.fill = image.Rect(0, y, toolbarWidth, y+buttonHeight)
	l.status = image.Rect(0, winH-bottomHeight, winW, winH)
	l.canvas = image.Rect(toolbarWidth, 0, winW, winH-bottomHeight)
	return l
}

// hit returns the region under p and the index of the element within it.
func (l layout) hit(p image.Point) (region, int) {
	if p.In(l.status) {
		return regionShortcut, -1
	}
	if p.X >= l.toolbarWidth {
		if p.In(l.canvas) {
			return regionCanvas, -1
		}
		return regionNone, -1
	}
	for i, r := range l.tools {
		if p.In(r) {
			return regionTool, i
		}
	}
	for i, r := range l.swatches {
		if p.In(r) {
			return regionSwatch, i
		}
	}
	for i, r := range l.widths {
		if p.In(r) {
			return regionWidth, i
		}
	}
	if p.In(l.fill) {
		return regionFill, -1
	}
	return regionNone, -1
}

// canvasSize is the drawing area available in the window.
func (l layout) canvasSize() (int, int) {
	w, h := l.canvas.Dx(), l.canvas.Dy()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

type hover struct {
	region region
	index  int
}

func drawToolbar(dst *image.RGBA, l layout, th *theme.Theme, st shapes.Style, hv hover) {
	draw.Draw(dst, image.Rect(0, 0, l.toolbarWidth, l.status.Min.Y), &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)

	// program title in the top-left corner
	t := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13,
		Dot: fixed.P(4, 16)}
	t.DrawString(title)

	for i, tool := range shapes.Tools() {
		if i >= len(l.tools) {
			break
		}
		b := &LabelButton{label: toolLabel(tool)}
		b.SetRect(l.tools[i])
		state := StateDefault
		if tool == st.Tool {
			state = StatePressed
		} else if hv.region == regionTool && hv.index == i {
			state = StateHover
		}
		b.Draw(dst, state, th)
	}

	selected := paletteIndexOf(st.Color)
	for i, rect := range l.swatches {
		draw.Draw(dst, rect, &image.Uniform{paletteColorAt(i)}, image.Point{}, draw.Src)
		if hv.region == regionSwatch && hv.index == i {
			draw.Draw(dst, rect, &image.Uniform{th.SwatchHover}, image.Point{}, draw.Over)
		}
		if i == selected {
			drawRect(dst, rect, th.SwatchSelected, 1)
		}
	}

	for i, rect := range l.widths {
		w := widthAt(i)
		c := th.ButtonBackground
		if float64(w) == st.Width {
			c = th.ButtonBackgroundPress
		} else if hv.region == regionWidth && hv.index == i {
			c = th.ButtonBackgroundHover
		}
		draw.Draw(dst, rect, &image.Uniform{c}, image.Point{}, draw.Src)
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.ButtonText), Face: basicfont.Face7x13, Dot: fixed.P(4, rect.Min.Y+12)}
		d.DrawString(fmt.Sprintf("%d", w))
		thick := w
		if thick > rect.Dy()-2 {
			thick = rect.Dy() - 2
		}
		lineY := rect.Min.Y + rect.Dy()/2
		drawLine(dst, 30, lineY, l.toolbarWidth-4, lineY, st.Color, thick)
	}

	label := "F:fill off"
	if st.Fill {
		label = "F:fill on"
	}
	fb := &LabelButton{label: label}
	fb.SetRect(l.fill)
	state := StateDefault
	if st.Fill {
		state = StatePressed
	} else if hv.region == regionFill {
		state = StateHover
	}
	fb.Draw(dst, state, th)
}

// drawShortcuts renders the status bar and returns its buttons so clicks can
// be matched against the rectangles that were drawn.
func drawShortcuts(dst *image.RGBA, l layout, th *theme.Theme, st shapes.Style, hoverIdx int, trigger func(string)) []*LabelButton {
	draw.Draw(dst, l.status, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	shortcuts := []*LabelButton{
		{label: "^S:save", action: func() { trigger("save") }},
		{label: "^C:copy image", action: func() { trigger("copy") }},
		{label: "Del:clear", action: func() { trigger("clear") }},
		{label: "Q:quit", action: func() { trigger("quit") }},
	}
	x := l.toolbarWidth + 4
	meas := &font.Drawer{Face: basicfont.Face7x13}
	for i, sc := range shortcuts {
		w := meas.MeasureString(sc.label).Ceil()
		sc.SetRect(image.Rect(x-2, l.status.Min.Y+2, x+w+6, l.status.Max.Y-2))
		state := StateDefault
		if i == hoverIdx {
			state = StateHover
		}
		sc.Draw(dst, state, th)
		drawRect(dst, sc.rect, th.ButtonBorder, 1)
		x = sc.rect.Max.X + 8
	}
	info := fmt.Sprintf("%s  %s  %gpx", st.Tool, ColorName(st.Color), st.Width)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13}
	if x+meas.MeasureString(info).Ceil()+8 < l.status.Max.X {
		d.Dot = fixed.P(l.status.Max.X-meas.MeasureString(info).Ceil()-8, l.status.Min.Y+16)
		d.DrawString(info)
	}
	return shortcuts
}

func drawMessage(dst *image.RGBA, th *theme.Theme, msg string, until time.Time) {
	if msg == "" || !time.Now().Before(until) {
		return
	}
	b := dst.Bounds()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: messageFace}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	px := (b.Dx() - wmsg) / 2
	py := (b.Dy()-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	bg := th.StatusBackground
	bg.A = 230
	draw.Draw(dst, rect, &image.Uniform{bg}, image.Point{}, draw.Over)
	drawRect(dst, rect, th.ButtonBorder, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func drawRect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	drawLine(img, rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Min.Y, col, thick)
	drawLine(img, rect.Max.X-1, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1, col, thick)
	drawLine(img, rect.Max.X-1, rect.Max.Y-1, rect.Min.X, rect.Max.Y-1, col, thick)
	drawLine(img, rect.Min.X, rect.Max.Y-1, rect.Min.X, rect.Min.Y, col, thick)
}
