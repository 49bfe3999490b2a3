package zero_test

import (
	"testing"

	"github.com/amp-labs/amp-drills/zero"
	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	Name  string
	Count int
}

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, zero.Value[int]())
	assert.Empty(t, zero.Value[string]())
	assert.Nil(t, zero.Value[*testStruct]())
	assert.Equal(t, testStruct{}, zero.Value[testStruct]())
}

func TestClear(t *testing.T) {
	t.Parallel()

	t.Run("zeroes every slot", func(t *testing.T) {
		t.Parallel()

		s := []int{1, 2, 3}
		zero.Clear(s)
		assert.Equal(t, []int{0, 0, 0}, s)
	})

	t.Run("sub-slice leaves the prefix alone", func(t *testing.T) {
		t.Parallel()

		s := []string{"a", "b", "c", "d"}
		zero.Clear(s[2:])
		assert.Equal(t, []string{"a", "b", "", ""}, s)
	})

	t.Run("nil slice is a no-op", func(t *testing.T) {
		t.Parallel()

		var s []*testStruct

		assert.NotPanics(t, func() { zero.Clear(s) })
	})
}
