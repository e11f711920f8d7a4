package svgtemplate

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// The parsed measurement font is process-wide and lazily initialized:
// parsing the TTF is the expensive part, faces are cheap per call and the
// font itself carries no per-call state.
var (
	measureOnce sync.Once
	measureFont *sfnt.Font
)

// MeasureTextWidth returns the horizontal advance of text rendered at
// fontSize, in the same user units the SVG coordinates use (72 DPI, so one
// point per unit). The server cannot load the overlay's declared font files,
// so every family measures with the bundled Go Regular face; fontFamily is
// accepted for call-site parity with the overlay's declared attributes.
// Returns 0 for empty text or when measurement is unavailable.
func MeasureTextWidth(text, fontFamily string, fontSize float64) float64 {
	_ = fontFamily

	if text == "" {
		return 0
	}
	if fontSize <= 0 {
		fontSize = 12
	}

	measureOnce.Do(func() {
		if f, err := opentype.Parse(goregular.TTF); err == nil {
			measureFont = f
		}
	})
	if measureFont == nil {
		return 0
	}

	face, err := opentype.NewFace(measureFont, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return 0
	}
	defer face.Close()

	return float64(font.MeasureString(face, text)) / 64
}
