// internal/assets/fonts.go
package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontManager загружает TTF один раз и кэширует face по размеру.
type FontManager struct {
	source *sfnt.Font
	faces  map[float64]font.Face
}

// NewFontManager читает и парсит шрифт по указанному пути.
func NewFontManager(path string) (*FontManager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontManager{
		source: parsed,
		faces:  make(map[float64]font.Face),
	}, nil
}

// Face возвращает face нужного размера, создавая его при первом запросе.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.source, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	m.faces[size] = face
	return face, nil
}

// DefaultFace — встроенный растровый шрифт на случай, когда TTF из
// конфига недоступен.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}
