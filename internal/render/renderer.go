package render

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// animation logic, and lets tests capture draw calls with a fake.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations (debug overlay)
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable image surface that can be drawn to.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Resource management
	Dispose()
}

// InputManager handles input from the user (keyboard, mouse, touch).
type InputManager interface {
	IsKeyJustPressed(key Key) bool

	// PointerPosition reports the most recent pointer location. The first
	// active touch point wins over the mouse cursor; ok is false when no
	// pointer has been seen this frame (no touches and no cursor movement
	// to report beyond the last known cursor position).
	PointerPosition() (x, y int, ok bool)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the animation reacts to
const (
	KeyF1 Key = iota
	KeyBackquote
	KeyEscape
)

// Game represents the per-frame callbacks the engine drives.
// This is typically implemented by the main application struct.
type Game interface {
	// Update advances the animation state. It is called every tick
	// (typically 60 times per second).
	Update() error

	// Draw draws the current frame. It must not mutate animation state.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the frame loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the frame loop with the provided game.
	// This is a blocking call that runs until the window closes.
	RunGame(game Game) error
}
