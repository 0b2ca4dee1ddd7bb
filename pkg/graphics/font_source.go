package graphics

import (
	"log"
	"os"

	"github.com/fufuok/cmap"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFontPaths lists the bold scalable fonts tried in order.
var DefaultFontPaths = []string{
	"C:/Windows/Fonts/arialbd.ttf",
	"C:/Windows/Fonts/arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
}

// FontSource resolves a face for a requested pixel size. It never fails: when
// none of Paths holds a usable TrueType font, the built-in 7x13 bitmap face is
// returned and the requested size is ignored.
//
// A FontSource is safe for concurrent use.
type FontSource struct {
	Paths []string

	parsed *cmap.MapOf[string, *truetype.Font] // key: font path
	broken *cmap.MapOf[string, struct{}]       // paths that failed to parse
}

func NewFontSource(paths ...string) *FontSource {
	if len(paths) == 0 {
		paths = DefaultFontPaths
	}
	return &FontSource{
		Paths:  append([]string(nil), paths...),
		parsed: cmap.NewOf[string, *truetype.Font](),
		broken: cmap.NewOf[string, struct{}](),
	}
}

// Face returns a face for size pixels. scalable is false when the bitmap
// fallback was used.
func (s *FontSource) Face(size float64) (face font.Face, scalable bool) {
	if f, ok := s.TryLoad(size); ok {
		return f, true
	}
	return basicfont.Face7x13, false
}

// TryLoad returns a face from the first existing and parsable font in Paths.
func (s *FontSource) TryLoad(size float64) (font.Face, bool) {
	for _, p := range s.Paths {
		f, ok := s.load(p)
		if !ok {
			continue
		}
		return truetype.NewFace(f, &truetype.Options{Size: size}), true
	}
	return nil, false
}

func (s *FontSource) load(p string) (*truetype.Font, bool) {
	if f, ok := s.parsed.Get(p); ok {
		return f, true
	}
	if _, ok := s.broken.Get(p); ok {
		return nil, false
	}
	if !isFileExist(p) {
		return nil, false
	}

	data, err := os.ReadFile(p)
	if err != nil {
		log.Printf("error reading font %s: %v\n", p, err)
		s.broken.Set(p, struct{}{})
		return nil, false
	}
	f, err := truetype.Parse(data)
	if err != nil {
		log.Printf("error parsing font %s: %v\n", p, err)
		s.broken.Set(p, struct{}{})
		return nil, false
	}
	s.parsed.Set(p, f)
	return f, true
}

func isFileExist(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
