package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/disintegration/imaging"

	"github.com/hrko/launcher-icons/internal/config"
	"github.com/hrko/launcher-icons/internal/layout"
	"github.com/hrko/launcher-icons/pkg/graphics"
)

func main() {
	var (
		size   int
		master bool
		out    string
	)
	flag.IntVar(&size, "size", 192, "canvas size in pixels")
	flag.BoolVar(&master, "master", false, "use the master asset sizing (half-size start, step 8, 0.85 fill)")
	flag.StringVar(&out, "o", "test.png", "output file")
	flag.Parse()

	brand := config.DefaultBrand()
	icon := graphics.NewTextIcon(brand.Text, brand.Color, brand.Background)
	if master {
		icon = graphics.NewMasterTextIcon(brand.Text, brand.Color, brand.Background)
		if size == 192 {
			size = layout.MasterSize
		}
	}

	fit, err := icon.Fit(size)
	if err != nil {
		log.Fatal(err)
	}
	if err := imaging.Save(icon.Draw(size, fit), out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s (%dx%d, font %dpx, %d shrink steps, scalable=%v)\n", out, size, size, fit.FontSize, fit.Iterations, fit.Scalable)
}
