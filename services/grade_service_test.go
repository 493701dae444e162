package services

import (
	"testing"

	"study-dashboard-system/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildGradeSnapshotAverage(t *testing.T) {
	snap := buildGradeSnapshot([]models.Grade{
		{Value: 4},
		{Value: 6},
	})

	assert.False(t, snap.Empty)
	if assert.NotNil(t, snap.ClassAverage) {
		assert.Equal(t, 5.0, *snap.ClassAverage)
	}
}

func TestBuildGradeSnapshotRoundsForDisplay(t *testing.T) {
	snap := buildGradeSnapshot([]models.Grade{
		{Value: 7},
		{Value: 6},
		{Value: 7},
	})

	// 20/3 = 6.666... → 6.67 for display
	if assert.NotNil(t, snap.ClassAverage) {
		assert.Equal(t, 6.67, *snap.ClassAverage)
	}
}

func TestBuildGradeSnapshotEmptyState(t *testing.T) {
	snap := buildGradeSnapshot(nil)

	assert.True(t, snap.Empty)
	assert.Nil(t, snap.ClassAverage, "no entries means no average, not zero")
}
