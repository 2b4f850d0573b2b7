package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentShare_FloorsTowardPlatform(t *testing.T) {
	assert.Equal(t, int64(33), PercentShare(333, 10))
	assert.Equal(t, int64(1), PercentShare(199, 1))
	assert.Equal(t, int64(0), PercentShare(99, 0))
	assert.Equal(t, int64(0), PercentShare(0, 50))
	assert.Equal(t, int64(0), PercentShare(-100, 50))
}

func TestSplitCommission_RemainderStaysWithPlatform(t *testing.T) {
	admin, platform := SplitCommission(1001, 70)

	assert.Equal(t, int64(700), admin)
	assert.Equal(t, int64(301), platform)
	assert.Equal(t, int64(1001), admin+platform)
}

func TestSplitCommission_Zero(t *testing.T) {
	admin, platform := SplitCommission(0, 70)

	assert.Zero(t, admin)
	assert.Zero(t, platform)
}
