package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistanceIdentical(t *testing.T) {
	assert.Equal(t, 0.0, CalculateDistance(1.0))
}

func TestCalculateDistanceClosedForm(t *testing.T) {
	identity := 0.5
	diff := 1 - identity
	expected := -math.Log(1 - diff - diff*diff/5)
	assert.InDelta(t, expected, CalculateDistance(identity), 1e-9)
}

func TestCalculateDistanceTableRegion(t *testing.T) {
	got := CalculateDistance(1 - 0.75)
	assert.InDelta(t, 1.95, got, 1e-9)
}

func TestCalculateDistanceCeiling(t *testing.T) {
	assert.Equal(t, 10.0, CalculateDistance(0.0))
	assert.Equal(t, 10.0, CalculateDistance(0.05))
}

func TestCalculateDistanceMonotonic(t *testing.T) {
	prev := CalculateDistance(1.0)
	for _, identity := range []float64{0.99, 0.8, 0.5, 0.2, 0.0} {
		d := CalculateDistance(identity)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}
