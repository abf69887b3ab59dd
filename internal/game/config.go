package game

import "dragonsleap/internal/engine"

// Window defaults.
const (
	WindowScale  = 3
	WindowWidth  = engine.ScreenWidth * WindowScale
	WindowHeight = engine.ScreenHeight * WindowScale
	WindowTitle  = "Dragon's Leap"
)
