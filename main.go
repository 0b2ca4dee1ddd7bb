package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tidwall/pretty"

	"github.com/hrko/launcher-icons/internal/config"
	"github.com/hrko/launcher-icons/internal/iconset"
	"github.com/hrko/launcher-icons/internal/layout"
	"github.com/hrko/launcher-icons/pkg/graphics"
)

type report struct {
	Layout  string           `json:"layout"`
	Root    string           `json:"root"`
	Written []iconset.Result `json:"written"`
}

func main() {
	log.SetPrefix("launcher-icons: ")
	log.SetFlags(0)

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := config.LoadOptions()
	if err != nil {
		return err
	}
	if err := parseFlags(&opts, args); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	l, err := layout.Parse(opts.Layout)
	if err != nil {
		return err
	}
	master, err := opts.MasterEnabled(l.DefaultMaster())
	if err != nil {
		return err
	}

	g := iconset.NewGenerator(config.DefaultBrand(), graphics.NewFontSource(opts.FontPaths...))
	g.Jobs = opts.Jobs
	g.OnWrite = func(r iconset.Result) {
		if !r.Scalable {
			log.Printf("no scalable font found, %s uses the built-in bitmap font\n", r.Path)
		}
		if !opts.JSON {
			fmt.Fprintln(stdout, "Wrote", r.Path)
		}
	}

	results, err := g.Run(ctx, l.Targets(opts.Root, master))
	if err != nil {
		return err
	}

	if opts.JSON {
		b, err := json.Marshal(report{Layout: l.String(), Root: opts.Root, Written: results})
		if err != nil {
			return err
		}
		_, err = stdout.Write(pretty.Pretty(b))
		return err
	}
	if l == layout.App {
		fmt.Fprintln(stdout, "Done! CFO launcher icons generated for", l.ResDir(opts.Root))
	}
	return nil
}

func parseFlags(opts *config.Options, args []string) error {
	fs := flag.NewFlagSet("launcher-icons", flag.ContinueOnError)
	fs.StringVar(&opts.Root, "root", opts.Root, "project root the output paths are resolved against")
	fs.StringVar(&opts.Layout, "layout", opts.Layout, "output layout: mobile or app")
	fs.StringVar(&opts.Master, "master", opts.Master, "write the 1024px master asset: auto, on or off")
	fs.IntVar(&opts.Jobs, "jobs", opts.Jobs, "number of icons rendered in parallel")
	fs.BoolVar(&opts.JSON, "json", opts.JSON, "print a JSON report instead of one line per file")
	fonts := fs.String("fonts", strings.Join(opts.FontPaths, ";"), "';'-separated font files tried in order (default: built-in list)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts.FontPaths = nil
	for _, p := range strings.Split(*fonts, ";") {
		if p = strings.TrimSpace(p); p != "" {
			opts.FontPaths = append(opts.FontPaths, p)
		}
	}
	return nil
}
