package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 7.69, Round2(7.6923076923))
	assert.Equal(t, 2827.12, Round2(2827.1165))
	assert.Equal(t, 39.0, Round2(39.000001))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -10.5, Round2(-10.499))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "15,000.00", Format(15000))
	assert.Equal(t, "1,050,000.00", Format(1050000))
	assert.Equal(t, "10,000.00", Format(10000))
	assert.Equal(t, "999.99", Format(999.99))
	assert.Equal(t, "0.00", Format(0))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite())
	assert.True(t, Finite(0, 39, -44.5))
	assert.False(t, Finite(1, math.NaN()))
	assert.False(t, Finite(math.Inf(1)))
	assert.False(t, Finite(math.Inf(-1), 2))
}
