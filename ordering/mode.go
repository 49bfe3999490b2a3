package ordering

import "strconv"

// Mode selects the direction of a sort.
type Mode int

const (
	// Ascending orders values so that values[i] <= values[j] for all i < j.
	Ascending Mode = iota
	// Descending orders values so that values[i] >= values[j] for all i < j.
	Descending
)

// Valid reports whether m is Ascending or Descending.
func (m Mode) Valid() bool {
	return m == Ascending || m == Descending
}

func (m Mode) String() string {
	switch m {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}
