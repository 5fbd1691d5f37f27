package slotgrid

import "errors"

var (
	// ErrInvalidWindow возвращается, когда close не строго позже open
	ErrInvalidWindow = errors.New("slotgrid: close must be strictly after open")

	// ErrInvalidGranularity возвращается при неположительном шаге сетки
	ErrInvalidGranularity = errors.New("slotgrid: granularity must be positive")
)
