package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mayjs/mayjs3d/maze"
	"github.com/mayjs/mayjs3d/viewer"
)

// Input is everything the screens read from the keyboard and mouse in one frame.
type Input struct {
	MouseX, MouseY   int
	MouseDX, MouseDY float64 // Cursor movement since the last frame.
	Wheel            float64

	LeftPressed     bool
	LeftJustPressed bool
	EscapePressed   bool // Escape went down this frame.

	Intent maze.MoveIntent
}

// Viewer returns the part of the input the character viewers use.
func (in Input) Viewer() viewer.Input {
	out := viewer.Input{
		MouseX:  in.MouseX,
		MouseY:  in.MouseY,
		Wheel:   in.Wheel,
		Clicked: in.LeftJustPressed,
	}
	// The first frame of a click is a click, not the start of a drag.
	if in.LeftPressed && !in.LeftJustPressed {
		out.DragX, out.DragY = in.MouseDX, in.MouseDY
	}
	return out
}

var moveKeys = struct {
	forward, backward, left, right []ebiten.Key
}{
	forward:  []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
	backward: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
	left:     []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
	right:    []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
}

// intentFromKeys reads the movement keys through pressed.
func intentFromKeys(pressed func(ebiten.Key) bool) maze.MoveIntent {

	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}

	return maze.MoveIntent{
		Forward:  held(moveKeys.forward),
		Backward: held(moveKeys.backward),
		Left:     held(moveKeys.left),
		Right:    held(moveKeys.right),
	}

}

// inputSampler reads ebiten's input state once per frame.
type inputSampler struct {
	prevX, prevY int
	started      bool
}

func (s *inputSampler) Sample() Input {

	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()

	in := Input{
		MouseX:          x,
		MouseY:          y,
		Wheel:           wheel,
		LeftPressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		EscapePressed:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Intent:          intentFromKeys(ebiten.IsKeyPressed),
	}

	if s.started {
		in.MouseDX = float64(x - s.prevX)
		in.MouseDY = float64(y - s.prevY)
	}

	s.prevX, s.prevY = x, y
	s.started = true

	return in

}

// Cursor captures and releases the mouse cursor.
type Cursor interface {
	Capture()
	Release()
	Captured() bool
}

type ebitenCursor struct{}

func (ebitenCursor) Capture() { ebiten.SetCursorMode(ebiten.CursorModeCaptured) }

func (ebitenCursor) Release() { ebiten.SetCursorMode(ebiten.CursorModeVisible) }

// Captured also notices when the browser or window manager takes the cursor back.
func (ebitenCursor) Captured() bool { return ebiten.CursorMode() == ebiten.CursorModeCaptured }
