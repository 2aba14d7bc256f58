package radar

import (
	"math"

	"github.com/paulcager/sectorradar/vector"
)

// Forward is along +X.
var axisForward = vector.AxisX

// Sector is one of the eight 45° compass sectors around the receiver,
// numbered counter-clockwise from Forward (+X).
type Sector int

const (
	Forward Sector = iota
	ForwardLeft
	Left
	BackLeft
	Back
	BackRight
	Right
	ForwardRight

	NumSectors = 8
)

var sectorNames = [NumSectors]string{
	"forward", "forward-left", "left", "back-left",
	"back", "back-right", "right", "forward-right",
}

// Grid position of each sector. Row 0 is the left-hand side, column 2 is
// ahead; the center cell is the receiver itself.
var sectorCells = [NumSectors][2]int{
	Forward:      {1, 2},
	ForwardLeft:  {0, 2},
	Left:         {0, 1},
	BackLeft:     {0, 0},
	Back:         {1, 0},
	BackRight:    {2, 0},
	Right:        {2, 1},
	ForwardRight: {2, 2},
}

func (s Sector) String() string {
	if s < 0 || s >= NumSectors {
		return "unknown"
	}
	return sectorNames[s]
}

// Cell returns the row and column of the sector in a Grid.
func (s Sector) Cell() (row, col int) {
	c := sectorCells[s]
	return c[0], c[1]
}

// SectorFor buckets an angle in degrees into one of numSectors equal
// sectors. Sector 0 is centered on 0° and indices increase with the angle.
// Each sector includes its upper edge: with 8 sectors, 22.5° is sector 0
// and -22.5° is sector 7.
func SectorFor(numSectors int, directionDegrees float64) int {
	width := 360 / float64(numSectors)
	s := int(math.Ceil((directionDegrees-width/2)/width)) % numSectors
	if s < 0 {
		s += numSectors
	}
	return s
}
