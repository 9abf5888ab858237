// Package colors contains functions to quickly generate mayjs3d.Color instances by name (i.e. "White()", "Fog()", "Hedge()", etc).
package colors

import "github.com/mayjs/mayjs3d"

func White() mayjs3d.Color {
	return mayjs3d.NewColor(1, 1, 1, 1)
}

func Red() mayjs3d.Color {
	return mayjs3d.NewColor(1, 0, 0, 1)
}

// SkyBlue is the color of the "you escaped" banner text.
func SkyBlue() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0x87ceeb)
}

// Scene palette.

// Fog is the game's exp2 fog color; the game clears to this color as well.
func Fog() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0xcccccc)
}

// HemisphereSky is the sky color of the game's hemisphere light.
func HemisphereSky() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0xffffbb)
}

// HemisphereGround is the ground color of the game's hemisphere light.
func HemisphereGround() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0x080820)
}

// Hedge is the color of maze wall cubes.
func Hedge() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0x4c7a34)
}

// Grass is the color of the ground plane.
func Grass() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0x5f8f3e)
}

// Perimeter is the color of the outer walls.
func Perimeter() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0x464646)
}

// Door is the color of the goal door.
func Door() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0x9c6b3c)
}

// Pursuer returns the body color for the pursuer at the given index.
func Pursuer(index int) mayjs3d.Color {
	if index%2 == 0 {
		return mayjs3d.NewColorFromHex(0xd94f70)
	}
	return mayjs3d.NewColorFromHex(0xf2a541)
}

// Viewer palette.

// ShowcaseBackground is the near-black the character showcase clears to.
func ShowcaseBackground() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0x050505)
}

// Sky is the carousel's hemisphere sky color.
func Sky() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0x3385ff)
}

// Sand is the carousel's ground color, also used as its hemisphere ground color.
func Sand() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0xffc880)
}

// Sunlight is the color of the carousel's directional light.
func Sunlight() mayjs3d.Color {
	return mayjs3d.NewColorFromHex(0xfff5e6)
}
