package gallery

import "fmt"

// Store is the ordered list of images on the grid.
// It is owned by a single screen and is not safe for concurrent use.
type Store struct {
	initial [GridSize]Image
	images  [GridSize]Image
}

// NewStore creates a store holding images in the given order.
// Exactly GridSize images are required.
func NewStore(images []Image) (*Store, error) {
	if len(images) != GridSize {
		return nil, fmt.Errorf("gallery: need %d images, got %d", GridSize, len(images))
	}
	s := &Store{}
	copy(s.initial[:], images)
	s.images = s.initial
	return s, nil
}

// List returns a snapshot of the images in grid order.
func (s *Store) List() []Image {
	out := make([]Image, GridSize)
	copy(out, s.images[:])
	return out
}

// Tiles returns a snapshot of the grid as index/image pairs.
func (s *Store) Tiles() []Tile {
	out := make([]Tile, GridSize)
	for i, img := range s.images {
		out[i] = Tile{Index: i, Image: img}
	}
	return out
}

// At returns the image at index i.
func (s *Store) At(i int) (Image, error) {
	if !validIndex(i) {
		return Image{}, &IndexError{I: i, J: i}
	}
	return s.images[i], nil
}

// Swap exchanges the images at positions i and j.
// Swapping a position with itself is a no-op.
func (s *Store) Swap(i, j int) error {
	if !validIndex(i) || !validIndex(j) {
		return &IndexError{I: i, J: j}
	}
	if i == j {
		return nil
	}
	s.images[i], s.images[j] = s.images[j], s.images[i]
	return nil
}

// Reset restores the order the store was created with.
func (s *Store) Reset() {
	s.images = s.initial
}

func validIndex(i int) bool {
	return i >= 0 && i < GridSize
}
