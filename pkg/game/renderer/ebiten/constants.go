package ebiten

import "image/color"

// Color palette, matching the web page the game started life as
var (
	colorBackground   = color.RGBA{0x22, 0x22, 0x22, 255} // Page background
	colorText         = color.RGBA{0xff, 0xff, 0xff, 255}
	colorSubtle       = color.RGBA{0xaa, 0xaa, 0xaa, 255}
	colorBoard        = color.RGBA{0x33, 0x33, 0x33, 255} // Behind open cells
	colorBoardBorder  = color.RGBA{0xff, 0xff, 0xff, 255}
	colorWall         = color.RGBA{0x44, 0x44, 0x44, 255}
	colorWallBorder   = color.RGBA{0x22, 0x22, 0x22, 255}
	colorPlayer       = color.RGBA{0x00, 0x00, 0xff, 255} // Blue
	colorGoal         = color.RGBA{0xff, 0xd7, 0x00, 255} // Gold
	colorBanner       = color.RGBA{0xff, 0xd7, 0x00, 255}
	colorButton       = color.RGBA{0x44, 0x44, 0x44, 255}
	colorButtonHover  = color.RGBA{0x55, 0x55, 0x55, 255}
	colorButtonBorder = color.RGBA{0xff, 0xff, 0xff, 255}
)

// Sizes in logical pixels
const (
	tileSize      = 40
	markerSize    = 30 // Player and goal squares
	boardBorder   = 2
	wallBorder    = 1
	pageMargin    = 20
	minPageWidth  = 480
	titleFontSize = 32.0
	uiFontSize    = 16.0
	bannerSize    = 24.0
	lineGap       = 10
	buttonPadX    = 20
	buttonPadY    = 10
	buttonBorder  = 2
	buttonGap     = 20 // Space between the board and the restart button
)

const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)
)
