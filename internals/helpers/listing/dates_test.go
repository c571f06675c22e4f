package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appboard_backend/internals/constants"
)

func TestComputeEndDate(t *testing.T) {
	end, err := ComputeEndDate("2024-01-01", 14)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", end)

	// lintas bulan
	end, err = ComputeEndDate("2024-02-20", 14)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", end) // 2024 kabisat

	_, err = ComputeEndDate("20-01-2024", 14)
	assert.Error(t, err)
}

func TestDefaultEndDate(t *testing.T) {
	end, err := DefaultEndDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", end)
}

func TestDaysRemaining(t *testing.T) {
	// jam berapapun "hari ini", end_date hari ini = 0 hari
	now := time.Date(2024, 3, 10, 23, 45, 0, 0, time.UTC)

	d, err := DaysRemaining("2024-03-10", now)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	d, err = DaysRemaining("2024-03-15", now)
	require.NoError(t, err)
	assert.Equal(t, 5, d)

	d, err = DaysRemaining("2024-03-09", now)
	require.NoError(t, err)
	assert.Equal(t, -1, d)

	_, err = DaysRemaining("nanti", now)
	assert.Error(t, err)
}

func TestBadgeTier(t *testing.T) {
	assert.Equal(t, TierExpired, BadgeTier(-1))
	assert.Equal(t, TierCritical, BadgeTier(0)) // batas bawah critical
	assert.Equal(t, TierCritical, BadgeTier(4))
	assert.Equal(t, TierWarning, BadgeTier(5))
	assert.Equal(t, TierWarning, BadgeTier(9))
	assert.Equal(t, TierHealthy, BadgeTier(10))
}

func TestExpiringSoon(t *testing.T) {
	assert.True(t, ExpiringSoon(0, constants.StatusApproved))
	assert.True(t, ExpiringSoon(5, constants.StatusApproved))
	assert.False(t, ExpiringSoon(6, constants.StatusApproved))
	assert.False(t, ExpiringSoon(-1, constants.StatusApproved))
	// hanya yang approved masuk ringkasan
	assert.False(t, ExpiringSoon(3, constants.StatusPending))
}
