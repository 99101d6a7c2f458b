// Package icons checks PWA manifest icons against the files they point to.
package icons

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/eringen/docsite"
)

var (
	// ErrSizeMismatch means the decoded image matches none of the declared sizes.
	ErrSizeMismatch = errors.New("icon size does not match declared sizes")
	// ErrTypeMismatch means the decoded format disagrees with the declared MIME type.
	ErrTypeMismatch = errors.New("icon format does not match declared type")
)

// Result is the outcome of checking one icon.
type Result struct {
	Icon   docsite.Icon
	Path   string
	Format string
	Width  int
	Height int
	Err    error
}

// OK reports whether the icon passed.
func (r Result) OK() bool { return r.Err == nil }

// Check resolves every icon's src against staticDir and compares the image
// header with the declared sizes and type.
func Check(staticDir string, icons []docsite.Icon) []Result {
	results := make([]Result, 0, len(icons))
	for _, icon := range icons {
		results = append(results, checkOne(staticDir, icon))
	}
	return results
}

func checkOne(staticDir string, icon docsite.Icon) Result {
	r := Result{Icon: icon, Path: filepath.Join(staticDir, filepath.FromSlash(icon.Src))}

	f, err := os.Open(r.Path)
	if err != nil {
		r.Err = err
		return r
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		r.Err = fmt.Errorf("decode %s: %w", icon.Src, err)
		return r
	}
	r.Format, r.Width, r.Height = format, cfg.Width, cfg.Height

	if want := "image/" + format; !strings.EqualFold(icon.Type, want) {
		r.Err = fmt.Errorf("%w: declared %s, found %s", ErrTypeMismatch, icon.Type, want)
		return r
	}
	actual := fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
	for _, declared := range strings.Fields(icon.Sizes) {
		if declared == actual {
			return r
		}
	}
	r.Err = fmt.Errorf("%w: declared %s, found %s", ErrSizeMismatch, icon.Sizes, actual)
	return r
}
