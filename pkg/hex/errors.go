package hex

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirectionComponent marks a direction component outside {-1,0,1}.
	ErrInvalidDirectionComponent = errors.New("invalid direction component")
	// ErrNotAUnitOffset marks an offset that is not one of the six grid steps.
	ErrNotAUnitOffset = errors.New("not a unit offset")
	// ErrInvalidLayoutSize marks a layout whose hex size is not a positive finite number.
	ErrInvalidLayoutSize = errors.New("invalid layout size")
	// ErrInvalidLayoutOrigin marks a layout origin with a NaN or infinite component.
	ErrInvalidLayoutOrigin = errors.New("invalid layout origin")
)

// InvalidDirectionComponentError reports a single offending component.
type InvalidDirectionComponentError struct {
	Component string // "q" or "r"
	Value     int
}

func (e *InvalidDirectionComponentError) Error() string {
	return fmt.Sprintf("%s: %s=%d is not one of -1, 0, 1", ErrInvalidDirectionComponent, e.Component, e.Value)
}

func (e *InvalidDirectionComponentError) Is(target error) bool {
	return target == ErrInvalidDirectionComponent
}
