package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Faces holds the optional TrueType faces. A nil face falls back to
// basicfont.
type Faces struct {
	Piece font.Face
	Label font.Face
}

// LoadFaces reads the piece and label fonts. Empty paths are skipped.
func LoadFaces(piecePath, labelPath string, tile int) (Faces, error) {
	var f Faces
	var err error
	if piecePath != "" {
		if f.Piece, err = loadFace(piecePath, float64(tile)*0.8); err != nil {
			return Faces{}, err
		}
	}
	if labelPath != "" {
		if f.Label, err = loadFace(labelPath, 20); err != nil {
			return Faces{}, err
		}
	}
	return f, nil
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
