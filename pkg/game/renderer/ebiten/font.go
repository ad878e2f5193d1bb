package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faceKey identifies a cached font face
type faceKey struct {
	bold bool
	size float64
}

// loadFonts parses the bundled Go fonts
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	e.sansFontSource = sans
	e.sansBoldFontSource = bold
	e.invalidateFontCache()
	return nil
}

// getFace returns a cached face of the given weight and size
func (e *EbitenRenderer) getFace(bold bool, size float64) *text.GoTextFace {
	key := faceKey{bold: bold, size: size}
	if face, ok := e.faces[key]; ok {
		return face
	}
	src := e.sansFontSource
	if bold {
		src = e.sansBoldFontSource
	}
	face := &text.GoTextFace{
		Source: src,
		Size:   size,
	}
	e.faces[key] = face
	return face
}

// getSansFontFace returns the face for regular UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	return e.getFace(false, uiFontSize)
}

// getTitleFontFace returns the large bold face for the page title
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	return e.getFace(true, titleFontSize)
}

// getBannerFontFace returns the bold face for the round-complete banner
func (e *EbitenRenderer) getBannerFontFace() *text.GoTextFace {
	return e.getFace(true, bannerSize)
}

// invalidateFontCache clears cached font faces
func (e *EbitenRenderer) invalidateFontCache() {
	e.faces = make(map[faceKey]*text.GoTextFace)
}
