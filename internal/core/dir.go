package core

// Dir is a grid-aligned movement direction.
type Dir int

const (
	DirNorth Dir = iota
	DirSouth
	DirWest
	DirEast
)

// Delta returns the (di, dj) cell offset for one step in the direction.
// North increases latitude (i), east increases longitude (j).
func (d Dir) Delta() (di, dj int) {
	switch d {
	case DirNorth:
		return 1, 0
	case DirSouth:
		return -1, 0
	case DirWest:
		return 0, -1
	case DirEast:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	case DirEast:
		return "east"
	default:
		return "unknown"
	}
}
