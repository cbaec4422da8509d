package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNights(t *testing.T) {
	in := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)

	n, err := Nights(in, in.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Partial nights round up.
	n, err = Nights(in, in.Add(30*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = Nights(in, in.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = Nights(in, in)
	assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)
	_, err = Nights(in.Add(time.Hour), in)
	assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)
}

func TestTotalCost(t *testing.T) {
	in := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)

	cost, err := TotalCost(350, in, in.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 700, cost)

	cost, err = TotalCost(0, in, in.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = TotalCost(350, in, in)
	assert.Error(t, err)
}
