package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	cases := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{1999, 4},
		{2000, 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, LevelFor(c.xp), "xp=%d", c.xp)
	}
}

func TestXPToNextIdentity(t *testing.T) {
	// xpToNext(xp) + (xp mod 500) == 500 for all xp >= 0
	for _, xp := range []int64{0, 1, 250, 499, 500, 777, 1999, 123456} {
		assert.Equal(t, int64(XPPerLevel), XPToNext(xp)+xp%XPPerLevel, "xp=%d", xp)
	}
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, ProgressPercent(0))
	assert.Equal(t, 50.0, ProgressPercent(250))
	assert.Equal(t, 0.0, ProgressPercent(500))
	assert.InDelta(t, 99.8, ProgressPercent(499), 0.001)
}

func TestSecretAreaVisible(t *testing.T) {
	// level 4 hidden, level 5 visible
	assert.False(t, SecretAreaVisible(1999))
	assert.True(t, SecretAreaVisible(2000))
	assert.True(t, SecretAreaVisible(9999))
	assert.False(t, SecretAreaVisible(0))
}

func TestCompletionAward(t *testing.T) {
	// 30 + priority*20 + effort*10
	assert.Equal(t, int64(100), CompletionAward(2, 3))
	assert.Equal(t, int64(60), CompletionAward(1, 1))
	assert.Equal(t, int64(120), CompletionAward(3, 3))
}

func TestClassAverage(t *testing.T) {
	_, ok := ClassAverage(nil)
	assert.False(t, ok, "empty input has no average")

	avg, ok := ClassAverage([]float64{4, 6})
	assert.True(t, ok)
	assert.Equal(t, 5.0, avg)

	avg, ok = ClassAverage([]float64{7.0})
	assert.True(t, ok)
	assert.Equal(t, 7.0, avg)
}

func TestWeightedAverage(t *testing.T) {
	result, warning := WeightedAverage([]WeightedPair{
		{Value: "8", Weight: "50"},
		{Value: "6", Weight: "50"},
	})
	assert.Equal(t, 7.0, result)
	assert.False(t, warning)
}

func TestWeightedAverageSkipsUnparseablePairs(t *testing.T) {
	// the broken pair drops out of the numerator AND the weight total
	result, warning := WeightedAverage([]WeightedPair{
		{Value: "8", Weight: "50"},
		{Value: "x", Weight: "50"},
	})
	assert.Equal(t, 4.0, result)
	assert.True(t, warning, "counted weight is 50, not 100")
}

func TestWeightedAverageNoWarningOnEmpty(t *testing.T) {
	result, warning := WeightedAverage(nil)
	assert.Equal(t, 0.0, result)
	assert.False(t, warning, "zero total weight never warns")
}
