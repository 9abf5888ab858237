package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/mayjs/mayjs3d"
	"github.com/mayjs/mayjs3d/colors"
	"github.com/mayjs/mayjs3d/maze"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	titleSize = 32
	hintSize  = 20
	navSize   = 20
)

// Fonts holds the faces the overlays are drawn with.
type Fonts struct {
	Title text.Face
	Hint  text.Face
	Nav   text.Face
}

// LoadFonts parses the bundled Go fonts.
func LoadFonts() (*Fonts, error) {

	title, err := newFace(goitalic.TTF, titleSize)
	if err != nil {
		return nil, fmt.Errorf("title font: %w", err)
	}

	hint, err := newFace(goitalic.TTF, hintSize)
	if err != nil {
		return nil, fmt.Errorf("hint font: %w", err)
	}

	nav, err := newFace(goregular.TTF, navSize)
	if err != nil {
		return nil, fmt.Errorf("navigation font: %w", err)
	}

	return &Fonts{Title: title, Hint: hint, Nav: nav}, nil

}

func newFace(ttf []byte, size float64) (text.Face, error) {

	fontData, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return text.NewGoXFace(face), nil

}

type bannerKind int

const (
	bannerNone bannerKind = iota
	bannerReady
	bannerLost
	bannerWon
)

type banner struct {
	title string
	hint  string
	color mayjs3d.Color
}

var banners = map[bannerKind]banner{
	bannerReady: {
		title: "Click to start the game.",
		hint:  "Move with W, A, S, D or the arrow keys.",
		color: colors.White(),
	},
	bannerLost: {
		title: "You were caught.",
		hint:  "Press ESC to play again.",
		color: colors.Red(),
	},
	bannerWon: {
		title: "You escaped!",
		hint:  "Press ESC to play again.",
		color: colors.SkyBlue(),
	},
}

// bannerFor picks the one banner shown over the game, if any.
func bannerFor(state maze.State, paused bool) bannerKind {
	switch state {
	case maze.Won:
		return bannerWon
	case maze.Lost:
		return bannerLost
	case maze.NotStarted:
		return bannerReady
	}
	if paused {
		return bannerReady
	}
	return bannerNone
}

// drawBanner draws b centered on dst, faded by alpha.
func drawBanner(dst *ebiten.Image, fonts *Fonts, b banner, alpha float32) {

	bounds := dst.Bounds()
	cx, cy := float64(bounds.Dx())/2, float64(bounds.Dy())/2

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(b.color.ToNRGBA64())
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, b.title, fonts.Title, op)

	op.SecondaryAlign = text.AlignStart
	op.GeoM.Translate(0, hintSize/2)
	text.Draw(dst, b.hint, fonts.Hint, op)

}
