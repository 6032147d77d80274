package fu

import (
	"testing"

	"gotest.tools/assert"
)

func Test_Fnzi(t *testing.T) {
	assert.Equal(t, Fnzi(0, 0, 3, 5), 3)
	assert.Equal(t, Fnzi(0, 0), 0)
	assert.Equal(t, Fnzi(7, 3), 7)
}

func Test_MinMax(t *testing.T) {
	assert.Equal(t, Maxi(2, 5), 5)
	assert.Equal(t, Mini(2, 5), 2)
}

func Test_Floats(t *testing.T) {
	assert.Equal(t, Mean([]float64{1, 2, 3}), 2.0)
	assert.Equal(t, Indmaxd([]float64{0.1, 0.7, 0.2}), 1)
}
