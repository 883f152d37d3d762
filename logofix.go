/*
Package logofix finds logo images in a directory tree and rewrites each one in
place as an 8-bit RGBA PNG.

Candidates are found with recursive glob patterns (see DefaultPatterns). Every
candidate is decoded, expanded to four channels and written back over itself.
Progress goes to an io.Writer, one line per event:

	Found: assets/images/logo_blue.png
	Fixed: assets/images/logo_blue.png
	Error with breakpointlogo.png: decode image: image: unknown format

A file that fails to decode or write is reported and skipped. Nothing stops a
run early.
*/
package logofix

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the logo locations searched when no patterns are given.
// They are matched in order; a file matched by more than one pattern is
// processed once per match.
var DefaultPatterns = []string{
	"**/breakpointlogo.png",
	"**/assets/**/logo*.png",
	"**/images/**/logo*.png",
}

type Option func(fx *Fixer)

// WithDir roots pattern matching at dir instead of the working directory.
// Reported paths are joined onto dir.
func WithDir(dir string) Option {
	return func(fx *Fixer) {
		fx.dir = dir
	}
}

// WithPatterns replaces DefaultPatterns.
func WithPatterns(patterns ...string) Option {
	return func(fx *Fixer) {
		fx.patterns = patterns
	}
}

// WithCompression sets the PNG compression level. BestCompression is the default.
func WithCompression(level CompressionLevel) Option {
	return func(fx *Fixer) {
		fx.level = level
	}
}

// If used, wildcards also match files and directories whose names start with a dot.
func WithHidden() Option {
	return func(fx *Fixer) {
		fx.hidden = true
	}
}

// WithDryRun reports matches without opening them.
func WithDryRun() Option {
	return func(fx *Fixer) {
		fx.dryRun = true
	}
}

// WithPreview prints a braille rendering of each fixed image, scaled to fit
// cols x lines terminal cells.
func WithPreview(cols, lines int) Option {
	return func(fx *Fixer) {
		fx.previewCols = cols
		fx.previewLines = lines
	}
}

// WithConfirm asks confirm before each file is overwritten. Declined files
// are reported as skipped.
func WithConfirm(confirm func(path string) (bool, error)) Option {
	return func(fx *Fixer) {
		fx.confirm = confirm
	}
}

type Fixer struct {
	out          io.Writer
	dir          string
	patterns     []string
	level        CompressionLevel
	hidden       bool
	dryRun       bool
	previewCols  int
	previewLines int
	confirm      func(path string) (bool, error)
}

func New(w io.Writer, opts ...Option) *Fixer {
	fx := Fixer{
		out:      w,
		dir:      ".",
		patterns: DefaultPatterns,
		level:    BestCompression,
	}
	for _, opt := range opts {
		opt(&fx)
	}
	return &fx
}

// ValidatePatterns reports the first pattern that is not a valid glob.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}
	return nil
}

/*
Run visits every pattern in order and fixes each match as it is found.

Per-file failures are printed and never returned. Run only returns an error
when a pattern is malformed, and it checks all patterns before touching any
file.
*/
func (fx *Fixer) Run() error {
	if err := ValidatePatterns(fx.patterns); err != nil {
		return err
	}
	for _, pattern := range fx.patterns {
		paths, err := fx.Discover(pattern)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Fprintf(fx.out, "Found: %s\n", path)
			if fx.dryRun {
				continue
			}
			fx.Fix(path)
		}
	}
	return nil
}

// Discover returns every path under the fixer's directory that matches
// pattern, in walk order. Unreadable directories are skipped silently.
func (fx *Fixer) Discover(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(fx.dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if !fx.hidden && isHidden(pattern, match) {
			continue
		}
		paths = append(paths, filepath.Join(fx.dir, filepath.FromSlash(match)))
	}
	return paths, nil
}

// Fix rewrites path as an RGBA PNG. Any failure is reported on the fixer's
// writer and the file is left as it was. A preview that cannot be drawn is
// reported on its own line; the file has been fixed by then.
func (fx *Fixer) Fix(path string) {
	rgba, err := fx.fix(path)
	if err != nil {
		fmt.Fprintf(fx.out, "Error with %s: %v\n", path, err)
		return
	}
	if rgba == nil || fx.previewCols < 1 || fx.previewLines < 1 {
		return
	}
	if err := Preview(fx.out, rgba, fx.previewCols, fx.previewLines); err != nil {
		fmt.Fprintf(fx.out, "Preview failed for %s: %v\n", path, err)
	}
}

// fix returns the converted image once it has been written back, or nil if
// the file was skipped.
func (fx *Fixer) fix(path string) (*image.NRGBA, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	rgba := ToNRGBA(img)

	if fx.confirm != nil {
		ok, err := fx.confirm(path)
		if err != nil {
			return nil, fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			fmt.Fprintf(fx.out, "Skipped: %s\n", path)
			return nil, nil
		}
	}

	err = replaceFile(path, func(w io.Writer) error {
		if err := EncodeRGBA(w, rgba, fx.level); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(fx.out, "Fixed: %s\n", path)
	return rgba, nil
}

// isHidden reports whether match has a dot-prefixed element that only a
// wildcard could have matched. Pattern elements that themselves start with a
// dot, such as .github or .well-known, may match dot names, as in shell
// globbing.
func isHidden(pattern, match string) bool {
	var dotted []string
	for _, elem := range strings.Split(pattern, "/") {
		if strings.HasPrefix(elem, ".") {
			dotted = append(dotted, elem)
		}
	}
	for _, elem := range strings.Split(match, "/") {
		if !strings.HasPrefix(elem, ".") || elem == "." || elem == ".." {
			continue
		}
		if !matchesAny(dotted, elem) {
			return true
		}
	}
	return false
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
