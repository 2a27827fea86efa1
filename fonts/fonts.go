package fonts

import (
	"fmt"
	"io/fs"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

// HUDFontPath is where LoadFromFS looks for the TrueType font.
const HUDFontPath = "fonts/hud.ttf"

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadFromFS loads the HUD and title faces from fsys. Without a font file
// both fall back to the built-in bitmap face.
func LoadFromFS(fsys fs.FS, hudSize float64) error {
	if fsys == nil {
		return nil
	}
	ttf, err := fs.ReadFile(fsys, HUDFontPath)
	if err != nil {
		return err
	}
	if err := LoadFontWithSize(HUD, ttf, hudSize); err != nil {
		return err
	}
	return LoadFontWithSize(Title, ttf, hudSize*2)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		return basicfont.Face7x13
	}
	return f
}
