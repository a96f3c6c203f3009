package burn

import "fmt"

// initialFrontierCap is the starting stack capacity; it grows on demand.
const initialFrontierCap = 8192

// cell is a canonical (depth, lateral1, lateral2) coordinate.
type cell struct {
	d, a, b int32
}

// frontier is a LIFO of cells waiting to be expanded.
type frontier struct {
	items []cell
	limit int
}

func newFrontier(volume, limit int) *frontier {
	c := initialFrontierCap
	if volume < c {
		c = volume
	}
	if limit > 0 && limit < c {
		c = limit
	}

	return &frontier{items: make([]cell, 0, c), limit: limit}
}

// push appends c, failing once the configured limit is reached.
func (f *frontier) push(c cell) error {
	if f.limit > 0 && len(f.items) >= f.limit {
		return fmt.Errorf("%w: %d pending voxels", ErrFloodAllocation, len(f.items))
	}
	f.items = append(f.items, c)

	return nil
}

// pop removes and returns the most recent cell. The frontier must be non-empty.
func (f *frontier) pop() cell {
	n := len(f.items) - 1
	c := f.items[n]
	f.items = f.items[:n]

	return c
}

func (f *frontier) empty() bool { return len(f.items) == 0 }

func (f *frontier) reset() { f.items = f.items[:0] }
