package pogreport

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontConfig names TTF files for each face. Empty paths fall back to the
// bundled Go fonts.
type FontConfig struct {
	RegularPath    string `yaml:"regular"`
	BoldPath       string `yaml:"bold"`
	ItalicPath     string `yaml:"italic"`
	BoldItalicPath string `yaml:"bold_italic"`
	MonoPath       string `yaml:"mono"`
}

// FontSet holds the raw TTF data of every face. Both surfaces build their
// own font objects from it.
type FontSet struct {
	ttf [fontStyleCount][]byte
}

// LoadFonts reads the configured font files.
func LoadFonts(cfg FontConfig) (*FontSet, error) {
	fs := &FontSet{}
	sources := [fontStyleCount]struct {
		path     string
		fallback []byte
	}{
		FontRegular:    {cfg.RegularPath, goregular.TTF},
		FontBold:       {cfg.BoldPath, gobold.TTF},
		FontItalic:     {cfg.ItalicPath, goitalic.TTF},
		FontBoldItalic: {cfg.BoldItalicPath, gobolditalic.TTF},
		FontMono:       {cfg.MonoPath, gomono.TTF},
	}
	for i, src := range sources {
		if src.path == "" {
			fs.ttf[i] = src.fallback
			continue
		}
		b, err := os.ReadFile(src.path)
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", FontStyle(i), err)
		}
		fs.ttf[i] = b
	}
	return fs, nil
}

// TTF returns the font file for f.
func (fs *FontSet) TTF(f FontStyle) []byte { return fs.ttf[f] }

func (f FontStyle) String() string {
	switch f {
	case FontRegular:
		return "regular"
	case FontBold:
		return "bold"
	case FontItalic:
		return "italic"
	case FontBoldItalic:
		return "bold-italic"
	case FontMono:
		return "mono"
	}
	return "unknown"
}
