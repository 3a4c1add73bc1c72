package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TickRate     = 50 // ticks per second in headless runs

	// Steering
	MinSteeringSpeed       = 0.1  // m/s, below this wheel steering has no authority
	SteeringDegreesPerUnit = 10.0 // bearing in degrees that saturates the steer command

	// Rover physics
	BodyRadius       = 600000.0 // metres
	DefaultMaxSpeed  = 12.0     // m/s at full throttle
	DefaultTurnRate  = 30.0     // deg/s at full steer
	DefaultAccel     = 2.0      // m/s^2
	WaypointRadius   = 15.0     // metres
	MetersPerPixel   = 2.0
	RoverRadius      = 8.0 // pixels
	HeadingLineScale = 20.0

	TextOffsetY = 4

	// UI
	ButtonSize      = 12.0
	ButtonY         = 32.0
	PauseButtonX    = ScreenWidth - 36.0
	SpeedButtonX    = ScreenWidth - 84.0
	IndicatorX      = ScreenWidth - 132.0
	ClickPulseScale = 0.3
	ClickPulseDecay = 8.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridColor       = color.RGBA{40, 40, 55, 255}
	RoverColor      = color.RGBA{70, 130, 180, 255}
	AutopilotColor  = color.RGBA{50, 205, 50, 255}
	WaypointColor   = color.RGBA{255, 215, 0, 255}
	HeadingColor    = color.RGBA{240, 240, 240, 255}
	VelocityColor   = color.RGBA{220, 60, 60, 220}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PausedColor     = color.RGBA{0, 0, 0, 160}
	IdleColor       = color.RGBA{90, 90, 100, 255}
	SpeedColors     = []color.RGBA{{70, 130, 180, 255}, {255, 165, 0, 255}, {220, 60, 60, 255}}
	StrokeWidth     = float32(2.0)
)
