package sortable_test

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-drills/sortable"
	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.Int(3).Equals(3))
	assert.False(t, sortable.Int(3).Equals(-3))
	assert.True(t, sortable.Int(-5).LessThan(2))
	assert.False(t, sortable.Int(2).LessThan(2))
}

func TestInt32(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.Int32(math.MinInt32).LessThan(math.MaxInt32))
	assert.True(t, sortable.Int32(math.MaxInt32).Equals(math.MaxInt32))
}

func TestFloat64(t *testing.T) {
	t.Parallel()

	nan := sortable.Float64(math.NaN())

	tests := []struct {
		name  string
		a, b  sortable.Float64
		equal bool
		less  bool
	}{
		{name: "ordinary values", a: 1.5, b: 2.5, equal: false, less: true},
		{name: "negative below positive", a: -0.5, b: 0.5, equal: false, less: true},
		{name: "equal values", a: 4, b: 4, equal: true, less: false},
		{name: "signed zeros are equal", a: sortable.Float64(math.Copysign(0, -1)), b: 0, equal: true, less: false},
		{name: "nan equals nan", a: nan, b: nan, equal: true, less: false},
		{name: "nan before negative infinity", a: nan, b: sortable.Float64(math.Inf(-1)), equal: false, less: true},
		{name: "number not before nan", a: 0, b: nan, equal: false, less: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.equal, tt.a.Equals(tt.b))
			assert.Equal(t, tt.less, tt.a.LessThan(tt.b))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.String("apple").LessThan("banana"))
	assert.True(t, sortable.String("Zebra").LessThan("apple"))
	assert.True(t, sortable.String("same").Equals("same"))
}

func TestLess(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.Less[sortable.Int](1, 2))
	assert.False(t, sortable.Less[sortable.Int](2, 1))
	assert.False(t, sortable.Less[sortable.String]("b", "a"))
}
