package render

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
)

var (
	fontOnce    sync.Once
	fontWarning string
	fontErr     error
)

// SetupFonts registers the font at path as the default chart font. It runs at
// most once per process; later calls return the first outcome. A missing file
// is not an error: the returned warning is shown and the built-in font is kept.
func SetupFonts(path string) (warning string, err error) {
	fontOnce.Do(func() {
		fontWarning, fontErr = registerFont(path)
	})
	return fontWarning, fontErr
}

func registerFont(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Sprintf("⚠ %s 폰트 파일을 찾을 수 없습니다.", filepath.Base(path)), nil
		}
		return "", errors.Wrap(err, "read font")
	}
	ttf, err := opentype.Parse(b)
	if err != nil {
		return "", errors.Wrapf(err, "parse font %s", filepath.Base(path))
	}
	face := font.Font{Typeface: font.Typeface(typefaceName(path))}
	font.DefaultCache.Add(font.Collection{{Font: face, Face: ttf}})
	plot.DefaultFont = face
	plotter.DefaultFont = face
	return "", nil
}

func typefaceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
