package gallery

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when a tile index is outside the grid.
var ErrInvalidIndex = errors.New("gallery: invalid index")

// IndexError reports the indices of a rejected swap.
type IndexError struct {
	I, J int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("gallery: invalid index in swap(%d, %d): valid range is [0,%d)", e.I, e.J, GridSize)
}

// Unwrap lets errors.Is match ErrInvalidIndex.
func (e *IndexError) Unwrap() error {
	return ErrInvalidIndex
}
