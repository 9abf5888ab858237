package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	navHeight = 64
	// navPeek is the fraction of the bar that stays on screen while it's tucked away.
	navPeek      = 0.3
	navSlideTime = 0.8
)

var navBackground = color.NRGBA{R: 125, G: 125, B: 125, A: 204}

type NavItem struct {
	Label string
	Route string
}

// NavBar is the navigation strip along the top of the window. It stays mostly hidden and slides down while the
// mouse is over the part that peeks out.
type NavBar struct {
	Items []NavItem

	offset float64 // Vertical offset of the bar; 0 when fully shown.
	open   bool
	slide  *gween.Tween
}

func NewNavBar(items ...NavItem) *NavBar {
	return &NavBar{
		Items:  items,
		offset: hiddenOffset(),
	}
}

func hiddenOffset() float64 {
	return -navHeight * (1 - navPeek)
}

// Update slides the bar towards shown or hidden and returns the route of an item clicked this frame.
func (nav *NavBar) Update(dt float64, in Input, width int) (string, bool) {

	hover := in.MouseY >= 0 && float64(in.MouseY) < navHeight+nav.offset

	if hover != nav.open {
		nav.open = hover
		target := hiddenOffset()
		if hover {
			target = 0
		}
		nav.slide = gween.New(float32(nav.offset), float32(target), navSlideTime, ease.OutQuad)
	}

	if nav.slide != nil {
		offset, finished := nav.slide.Update(float32(dt))
		nav.offset = float64(offset)
		if finished {
			nav.slide = nil
		}
	}

	if !hover || !in.LeftJustPressed || len(nav.Items) == 0 || width <= 0 {
		return "", false
	}

	i := in.MouseX * len(nav.Items) / width
	if i < 0 || i >= len(nav.Items) {
		return "", false
	}

	return nav.Items[i].Route, true

}

// Offset returns how far the bar is pushed up off the top of the window.
func (nav *NavBar) Offset() float64 {
	return nav.offset
}

// Open returns true while the mouse is over the bar.
func (nav *NavBar) Open() bool {
	return nav.open
}

func (nav *NavBar) Draw(dst *ebiten.Image, face text.Face, current string) {

	width := float64(dst.Bounds().Dx())
	top := nav.offset

	vector.DrawFilledRect(dst, 0, float32(top), float32(width), navHeight, navBackground, false)

	if len(nav.Items) == 0 {
		return
	}

	cell := width / float64(len(nav.Items))

	for i, item := range nav.Items {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(cell*(float64(i)+0.5), top+navHeight/2)
		if item.Route != current {
			op.ColorScale.ScaleAlpha(0.7)
		}
		text.Draw(dst, item.Label, face, op)
	}

}
