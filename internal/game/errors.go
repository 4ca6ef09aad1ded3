package game

import "errors"

var (
	ErrInvalidViewport  = errors.New("viewport dimensions must be positive")
	ErrInvalidCapacity  = errors.New("particle capacity must be positive")
	ErrInvalidFrequency = errors.New("emission frequency must be positive")
	ErrSpriteGeometry   = errors.New("sprite sheet size does not match frame grid")
)
