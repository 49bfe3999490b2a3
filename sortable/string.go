package sortable

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan compares byte-wise, like the < operator on strings.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
