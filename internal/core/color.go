package core

// Color is the foreground color of a screen cell, written as a "#rrggbb"
// hex string. The empty string means the terminal default.
type Color string

// Palette used by the flappy renderer.
const (
	ColorDefault   Color = ""
	ColorSky       Color = "#87ceeb"
	ColorCloud     Color = "#f0f8ff"
	ColorPipe      Color = "#32cd32"
	ColorPipeCap   Color = "#1a6b1a"
	ColorGround    Color = "#8b4513"
	ColorGrass     Color = "#228b22"
	ColorBird      Color = "#ffd700"
	ColorBeak      Color = "#ff6347"
	ColorWhite     Color = "#ffffff"
	ColorHighlight Color = "#ffd93d"
)
