package radar

import "strings"

// Grid cell markers.
const (
	Empty byte = '0'
	Mixed byte = 'x'
)

// Grid is the 3×3 display of sector occupancy. Rows run left to right of the
// receiver, columns run back to front; [1][1] is the receiver.
type Grid [3][3]byte

func NewGrid() Grid {
	var g Grid
	for i := range g {
		for j := range g[i] {
			g[i][j] = Empty
		}
	}
	return g
}

// Mark records label in a cell. An empty cell takes the label, a cell that
// already holds a different label (or Mixed) becomes Mixed.
func (g *Grid) Mark(row, col int, label byte) {
	switch g[row][col] {
	case Empty:
		g[row][col] = label
	case label:
	default:
		g[row][col] = Mixed
	}
}

func (g Grid) At(s Sector) byte {
	row, col := s.Cell()
	return g[row][col]
}

// String renders the grid as three lines of space-separated cells.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for j, c := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
