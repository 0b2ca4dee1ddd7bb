package graphics

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

var defaultFontSource = NewFontSource()

// TextIcon renders a short text centered on a square canvas, shrinking the
// font until the text fits inside MaxFillRatio of the canvas.
type TextIcon struct {
	Text  string
	Color struct {
		Text       color.Color
		Background color.Color
	}
	MaxFillRatio     float64
	MinFontSize      int
	FontStep         int
	StartFontDivisor int         // initial font size is canvas size / StartFontDivisor
	Fonts            *FontSource // nil means DefaultFontPaths
}

// TextFit is the outcome of the sizing loop for one canvas size.
type TextFit struct {
	FontSize   int
	Bounds     TextBounds
	Offset     image.Point // top-left of the text bounds on the canvas
	Iterations int         // number of shrink steps taken
	Scalable   bool        // false when the bitmap fallback face was used

	face font.Face
}

// NewTextIcon returns a TextIcon tuned for launcher icon sizes (48 to 192 px).
func NewTextIcon(text string, fg, bg color.Color) *TextIcon {
	t := &TextIcon{}
	t.Text = text
	t.Color.Text = fg
	t.Color.Background = bg
	t.MaxFillRatio = 0.8
	t.MinFontSize = 8
	t.FontStep = 2
	t.StartFontDivisor = 1
	return t
}

// NewMasterTextIcon returns a TextIcon tuned for the 1024 px master asset.
// It starts at half the canvas size and shrinks in larger steps.
func NewMasterTextIcon(text string, fg, bg color.Color) *TextIcon {
	t := NewTextIcon(text, fg, bg)
	t.MaxFillRatio = 0.85
	t.FontStep = 8
	t.StartFontDivisor = 2
	return t
}

func (t *TextIcon) Render(size int) (image.Image, error) {
	fit, err := t.Fit(size)
	if err != nil {
		return nil, err
	}
	return t.Draw(size, fit), nil
}

// Fit picks the font size for a size x size canvas. Once MinFontSize is
// reached the text is accepted even if it still overflows.
func (t *TextIcon) Fit(size int) (TextFit, error) {
	if err := t.validateConfig(size); err != nil {
		return TextFit{}, err
	}

	fonts := t.Fonts
	if fonts == nil {
		fonts = defaultFontSource
	}
	limit := float64(size) * t.MaxFillRatio

	fontSize := max(size/t.StartFontDivisor, 1)
	face, scalable := fonts.Face(float64(fontSize))
	b := MeasureText(face, t.Text)
	iterations := 0
	for (float64(b.Width) > limit || float64(b.Height) > limit) && fontSize > t.MinFontSize {
		fontSize = max(fontSize-t.FontStep, 1)
		face, scalable = fonts.Face(float64(fontSize))
		b = MeasureText(face, t.Text)
		iterations++
	}

	return TextFit{
		FontSize:   fontSize,
		Bounds:     b,
		Offset:     image.Pt(floorDiv(size-b.Width, 2), floorDiv(size-b.Height, 2)),
		Iterations: iterations,
		Scalable:   scalable,
		face:       face,
	}, nil
}

// Draw paints the background and the text placed as described by fit.
func (t *TextIcon) Draw(size int, fit TextFit) image.Image {
	c := gg.NewContext(size, size)
	c.SetColor(t.Color.Background)
	c.Clear()

	if fit.face == nil {
		return c.Image()
	}

	// shift the dot so the ink box, not the baseline, lands on Offset
	dot := fit.Offset.Sub(fit.Bounds.Min)
	c.SetFontFace(fit.face)
	c.SetColor(t.Color.Text)
	c.DrawString(t.Text, float64(dot.X), float64(dot.Y))

	return c.Image()
}

func (t *TextIcon) validateConfig(size int) error {
	if size <= 0 {
		return fmt.Errorf("size must be greater than 0")
	}
	if t.Text == "" {
		return fmt.Errorf("Text must not be empty")
	}
	if t.Color.Text == nil || t.Color.Background == nil {
		return fmt.Errorf("Color.Text and Color.Background must be set")
	}
	if t.MaxFillRatio <= 0.0 || t.MaxFillRatio > 1.0 {
		return fmt.Errorf("MaxFillRatio must be in (0, 1]")
	}
	if t.MinFontSize <= 0 {
		return fmt.Errorf("MinFontSize must be greater than 0")
	}
	if t.FontStep <= 0 {
		return fmt.Errorf("FontStep must be greater than 0")
	}
	if t.StartFontDivisor <= 0 {
		return fmt.Errorf("StartFontDivisor must be greater than 0")
	}
	return nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
