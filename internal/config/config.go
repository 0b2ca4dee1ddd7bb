package config

import (
	"fmt"
	"image/color"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/colors"
)

// Brand inputs shared by every generated icon.
const (
	BrandText            = "CFO"
	BrandTextColor       = "#05234b" // dark navy
	BrandBackgroundColor = "#ffffff"
)

// Brand is the text and colors drawn on every icon.
type Brand struct {
	Text       string
	Color      color.RGBA
	Background color.RGBA
}

// DefaultBrand returns the CFO brand.
func DefaultBrand() Brand {
	b, err := NewBrand(BrandText, BrandTextColor, BrandBackgroundColor)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBrand builds a Brand from hex colors such as "#05234b".
func NewBrand(text, fgHex, bgHex string) (Brand, error) {
	if text == "" {
		return Brand{}, fmt.Errorf("brand text must not be empty")
	}
	fg, err := parseHex(fgHex)
	if err != nil {
		return Brand{}, fmt.Errorf("text color: %w", err)
	}
	bg, err := parseHex(bgHex)
	if err != nil {
		return Brand{}, fmt.Errorf("background color: %w", err)
	}
	return Brand{Text: text, Color: fg, Background: bg}, nil
}

func parseHex(s string) (color.RGBA, error) {
	hex, err := colors.ParseHEX(s)
	if err != nil {
		return color.RGBA{}, err
	}
	c := hex.ToRGBA()
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(c.A * 0xff)}, nil
}

// Options controls where and how a run writes its icons. Every field can be
// set from the environment and is then overridden by command-line flags.
type Options struct {
	Root      string   `env:"ICONGEN_ROOT" envDefault:"."`
	Layout    string   `env:"ICONGEN_LAYOUT" envDefault:"mobile"` // "mobile" | "app"
	Master    string   `env:"ICONGEN_MASTER" envDefault:"auto"`   // "auto" | "on" | "off"
	Jobs      int      `env:"ICONGEN_JOBS" envDefault:"1"`
	JSON      bool     `env:"ICONGEN_JSON"`
	FontPaths []string `env:"ICONGEN_FONT_PATHS" envSeparator:";"`
}

// LoadOptions reads Options from the process environment.
func LoadOptions() (Options, error) {
	return loadOptions(nil)
}

// loadOptions reads Options from environ, or from the process environment
// when environ is nil.
func loadOptions(environ map[string]string) (Options, error) {
	var o Options
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return Options{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// MasterEnabled resolves the Master option against the layout default.
func (o Options) MasterEnabled(layoutDefault bool) (bool, error) {
	switch o.Master {
	case "auto", "":
		return layoutDefault, nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("master must be one of 'auto', 'on', 'off'")
	}
}

func (o Options) Validate() error {
	if o.Root == "" {
		return fmt.Errorf("root must not be empty")
	}
	if o.Jobs <= 0 {
		return fmt.Errorf("jobs must be greater than 0")
	}
	return nil
}
