package iconset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/hrko/launcher-icons/internal/config"
	"github.com/hrko/launcher-icons/internal/layout"
	"github.com/hrko/launcher-icons/pkg/graphics"
)

// Result describes one written icon.
type Result struct {
	Path     string `json:"path"`
	Size     int    `json:"size"`
	FontSize int    `json:"fontSize"`
	Scalable bool   `json:"scalableFont"`
}

// Generator renders the brand into each target and writes it as PNG.
type Generator struct {
	Brand config.Brand
	Fonts *graphics.FontSource
	Jobs  int

	// OnWrite, if set, is called after each file is written. Calls are
	// serialized.
	OnWrite func(Result)
}

func NewGenerator(brand config.Brand, fonts *graphics.FontSource) *Generator {
	return &Generator{
		Brand: brand,
		Fonts: fonts,
		Jobs:  1,
	}
}

// Run writes every target. The first failure stops the run; files written
// before it are left in place. Results are returned in target order.
func (g *Generator) Run(ctx context.Context, targets []layout.Target) ([]Result, error) {
	results := make([]Result, len(targets))
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.Jobs, 1))
	for i, target := range targets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := g.write(target)
			if err != nil {
				return err
			}
			results[i] = r
			if g.OnWrite != nil {
				mu.Lock()
				g.OnWrite(r)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Icon returns the renderer for target: the master asset uses its own
// starting size, step and fill ratio.
func (g *Generator) Icon(target layout.Target) *graphics.TextIcon {
	var t *graphics.TextIcon
	if target.Master {
		t = graphics.NewMasterTextIcon(g.Brand.Text, g.Brand.Color, g.Brand.Background)
	} else {
		t = graphics.NewTextIcon(g.Brand.Text, g.Brand.Color, g.Brand.Background)
	}
	t.Fonts = g.Fonts
	return t
}

func (g *Generator) write(target layout.Target) (Result, error) {
	icon := g.Icon(target)
	fit, err := icon.Fit(target.Size)
	if err != nil {
		return Result{}, fmt.Errorf("render %s: %w", target.Path, err)
	}
	img := icon.Draw(target.Size, fit)

	if err := os.MkdirAll(filepath.Dir(target.Path), 0755); err != nil {
		return Result{}, fmt.Errorf("create directory: %w", err)
	}
	if err := imaging.Save(img, target.Path); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", target.Path, err)
	}

	return Result{
		Path:     target.Path,
		Size:     target.Size,
		FontSize: fit.FontSize,
		Scalable: fit.Scalable,
	}, nil
}
