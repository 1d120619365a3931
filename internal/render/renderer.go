package render

import (
	"errors"
	"image/color"
)

// Point is a position in screen pixels, y growing downwards
type Point struct {
	X, Y float32
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Board drawing code only talks to this interface so the
// backend can be swapped without touching game logic.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillPolygon(dst Image, points []Point, clr color.Color)
	StrokePolygon(dst Image, points []Point, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game listens to
const (
	Key1 Key = iota
	Key2
	Key3
	Key4
	Key5
	Key6
	KeyBackspace
	KeyY
	KeyR // Restart
	KeyEscape
)

// Keys lists every key constant, in declaration order
var Keys = []Key{Key1, Key2, Key3, Key4, Key5, Key6, KeyBackspace, KeyY, KeyR, KeyEscape}

// MouseButton represents a mouse button.
type MouseButton int

// MouseButtonLeft is the only button the game reacts to
const MouseButtonLeft MouseButton = 0

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// ErrQuit is returned from Game.Update to end the game loop normally
var ErrQuit = errors.New("quit")
