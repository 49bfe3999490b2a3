package sudoku

import (
	"fmt"
	"strconv"
)

// Unit is the kind of group a rule applies to.
type Unit int

const (
	Row Unit = iota
	Column
	Box
)

func (u Unit) String() string {
	switch u {
	case Row:
		return "row"
	case Column:
		return "column"
	case Box:
		return "box"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// Violation describes a digit that appears more than once in one unit.
// Row and Col locate the second occurrence.
type Violation struct {
	Unit  Unit
	Index int
	Digit byte
	Row   int
	Col   int
}

func (v *Violation) Error() string {
	return fmt.Sprintf("digit %c repeated in %s %d at (%d, %d)", v.Digit, v.Unit, v.Index, v.Row, v.Col)
}

func (v *Violation) Unwrap() error {
	return ErrDuplicateDigit
}
