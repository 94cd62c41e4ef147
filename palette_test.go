package chaos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	chaos "github.com/DuroCodes/chaos-game"
)

func TestDistinctColors(t *testing.T) {
	for _, k := range []int{1, 3, 5, 12} {
		colors := chaos.DistinctColors(k)
		assert.Len(t, colors, k)

		seen := make(map[[4]uint32]bool, k)
		for _, c := range colors {
			r, g, b, a := c.RGBA()
			key := [4]uint32{r, g, b, a}
			assert.False(t, seen[key], "k=%d: duplicate color %v", k, c)
			seen[key] = true
		}
	}
}

func TestDistinctColorsDeterministic(t *testing.T) {
	assert.Equal(t, chaos.DistinctColors(7), chaos.DistinctColors(7))
}

func TestDistinctColorsEmpty(t *testing.T) {
	assert.Nil(t, chaos.DistinctColors(0))
	assert.Nil(t, chaos.DistinctColors(-2))
}
