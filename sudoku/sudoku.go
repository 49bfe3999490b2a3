// Package sudoku checks 9×9 Sudoku grids against the placement rules: no
// digit may repeat within a row, a column, or one of the nine 3×3 boxes.
//
// Only the digits '1' through '9' take part in the check. Empty cells ('.')
// and any other byte are ignored rather than rejected.
package sudoku

import (
	"errors"
	"fmt"

	drillerrors "github.com/amp-labs/amp-drills/errors"
)

const (
	// Size is the number of rows, columns and boxes in a grid.
	Size = 9

	// Empty marks a cell without a digit.
	Empty byte = '.'

	boxSize = 3
)

var (
	// ErrMalformedGrid is returned by ParseGrid for input that is not nine
	// rows of nine cells.
	ErrMalformedGrid = fmt.Errorf("%w: malformed grid", drillerrors.ErrInvalidArgument)

	// ErrDuplicateDigit is matched by every *Violation.
	ErrDuplicateDigit = errors.New("duplicate digit")
)

// Grid is a Sudoku board indexed as grid[row][col].
type Grid [Size][Size]byte

// NewGrid returns a grid with every cell Empty.
func NewGrid() Grid {
	var g Grid

	for r := range g {
		for c := range g[r] {
			g[r][c] = Empty
		}
	}

	return g
}

// ParseGrid builds a grid from nine rows of nine single-byte cells.
func ParseGrid(rows ...string) (Grid, error) {
	var g Grid

	if len(rows) != Size {
		return g, fmt.Errorf("%w: want %d rows, got %d", ErrMalformedGrid, Size, len(rows))
	}

	for r, row := range rows {
		if len(row) != Size {
			return g, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), Size)
		}

		copy(g[r][:], row)
	}

	return g, nil
}

// String renders the grid as nine newline separated rows.
func (g Grid) String() string {
	buf := make([]byte, 0, Size*(Size+1))

	for r := range g {
		buf = append(buf, g[r][:]...)
		if r < Size-1 {
			buf = append(buf, '\n')
		}
	}

	return string(buf)
}

// BoxIndex returns the index, 0 through 8 in row-major order, of the 3×3 box
// holding the cell at row, col.
func BoxIndex(row, col int) int {
	return (row/boxSize)*boxSize + col/boxSize
}

// digit returns the 0-based value of a '1' to '9' cell, or -1 for anything
// else.
func digit(cell byte) int {
	if cell < '1' || cell > '9' {
		return -1
	}

	return int(cell - '1')
}

// scan visits every repeated digit in row-major order, reporting each
// (unit, index, digit) triple once. It stops as soon as visit returns false.
func scan(g Grid, visit func(Violation) bool) {
	// seen[u][i] is a bitmask of digits already placed in unit u, index i;
	// reported[u][i] marks those whose repetition has been reported.
	var seen, reported [3][Size]uint16

	for r := range Size {
		for c := range Size {
			d := digit(g[r][c])
			if d < 0 {
				continue
			}

			bit := uint16(1) << d
			indexes := [3]int{r, c, BoxIndex(r, c)}

			for u, idx := range indexes {
				if seen[u][idx]&bit == 0 {
					seen[u][idx] |= bit

					continue
				}

				if reported[u][idx]&bit != 0 {
					continue
				}

				reported[u][idx] |= bit

				if !visit(Violation{Unit: Unit(u), Index: idx, Digit: g[r][c], Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// IsValid reports whether no digit repeats within any row, column or box.
func IsValid(g Grid) bool {
	valid := true

	scan(g, func(Violation) bool {
		valid = false

		return false
	})

	return valid
}

// Validate returns nil for a valid grid. Otherwise it returns every rule
// violation as a *Violation; several are joined, and errors.As recovers the
// first one found in row-major order.
func Validate(g Grid) error {
	var errs drillerrors.Collection

	scan(g, func(v Violation) bool {
		errs.Add(&v)

		return true
	})

	return errs.GetError()
}
