package layout

import (
	"fmt"
	"path/filepath"
)

const (
	Mobile Layout = iota // <root>/mobile/android/..., plus the master asset
	App                  // <root>/android/...
)

// Layout selects where the launcher icons are written inside a project.
type Layout int

const (
	ForegroundName = "ic_launcher_foreground.png"
	MasterName     = "cfo_icon.png"
	MasterSize     = 1024
)

// Bucket is one Android mipmap density directory.
type Bucket struct {
	Name string
	Size int
}

// Buckets lists the mipmap densities from lowest to highest.
var Buckets = []Bucket{
	{Name: "mipmap-mdpi", Size: 48},
	{Name: "mipmap-hdpi", Size: 72},
	{Name: "mipmap-xhdpi", Size: 96},
	{Name: "mipmap-xxhdpi", Size: 144},
	{Name: "mipmap-xxxhdpi", Size: 192},
}

// Target is one file a run writes.
type Target struct {
	Path   string `json:"path"`
	Size   int    `json:"size"`
	Master bool   `json:"master,omitempty"`
}

func Parse(s string) (Layout, error) {
	switch s {
	case "mobile":
		return Mobile, nil
	case "app":
		return App, nil
	default:
		return 0, fmt.Errorf("layout must be one of 'mobile', 'app'")
	}
}

func (l Layout) String() string {
	switch l {
	case Mobile:
		return "mobile"
	case App:
		return "app"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ResDir returns the Android res directory under root.
func (l Layout) ResDir(root string) string {
	res := filepath.Join("android", "app", "src", "main", "res")
	if l == Mobile {
		return filepath.Join(root, "mobile", res)
	}
	return filepath.Join(root, res)
}

// MasterDir returns the directory holding the master asset. It is the same
// for every layout.
func (l Layout) MasterDir(root string) string {
	return filepath.Join(root, "assets", "images")
}

// DefaultMaster reports whether the layout writes the master asset unless
// told otherwise.
func (l Layout) DefaultMaster() bool {
	return l == Mobile
}

// Targets lists every file to write under root, buckets first.
func (l Layout) Targets(root string, master bool) []Target {
	targets := make([]Target, 0, len(Buckets)+1)
	for _, b := range Buckets {
		targets = append(targets, Target{
			Path: filepath.Join(l.ResDir(root), b.Name, ForegroundName),
			Size: b.Size,
		})
	}
	if master {
		targets = append(targets, Target{
			Path:   filepath.Join(l.MasterDir(root), MasterName),
			Size:   MasterSize,
			Master: true,
		})
	}
	return targets
}
