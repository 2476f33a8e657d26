package service

import (
	"context"
	"testing"
	"time"

	"edufocus-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPomodoroTodayStatsWithoutRow(t *testing.T) {
	svc := NewPomodoroService(newTestFactory(t))
	ctx := context.Background()

	stats, err := svc.TodayStats(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.SessionsCompleted)
	assert.Equal(t, 0, stats.TotalFocusTime)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), stats.Date)
}

func TestPomodoroUpdateCreatesRow(t *testing.T) {
	svc := NewPomodoroService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	stats, err := svc.UpdateStats(ctx, userId, &dto.UpdatePomodoroRequest{
		SessionsCompleted: ptr(2),
		TotalFocusTime:    ptr(3000),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.SessionsCompleted)
	assert.Equal(t, 3000, stats.TotalFocusTime)

	fetched, err := svc.TodayStats(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.SessionsCompleted)
}

func TestPomodoroUpdateOverwritesNotAdds(t *testing.T) {
	svc := NewPomodoroService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	_, err := svc.UpdateStats(ctx, userId, &dto.UpdatePomodoroRequest{
		SessionsCompleted: ptr(2),
		TotalFocusTime:    ptr(3000),
	})
	require.NoError(t, err)

	// The client reports totals, not deltas.
	stats, err := svc.UpdateStats(ctx, userId, &dto.UpdatePomodoroRequest{
		SessionsCompleted: ptr(5),
		TotalFocusTime:    ptr(7500),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.SessionsCompleted)
	assert.Equal(t, 7500, stats.TotalFocusTime)
}

func TestPomodoroPartialUpdate(t *testing.T) {
	svc := NewPomodoroService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	_, err := svc.UpdateStats(ctx, userId, &dto.UpdatePomodoroRequest{
		SessionsCompleted: ptr(3),
		TotalFocusTime:    ptr(4500),
	})
	require.NoError(t, err)

	stats, err := svc.UpdateStats(ctx, userId, &dto.UpdatePomodoroRequest{
		SessionsCompleted: ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.SessionsCompleted)
	assert.Equal(t, 4500, stats.TotalFocusTime)
}

func TestPomodoroStatsArePerUser(t *testing.T) {
	svc := NewPomodoroService(newTestFactory(t))
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.UpdateStats(ctx, alice, &dto.UpdatePomodoroRequest{
		SessionsCompleted: ptr(6),
	})
	require.NoError(t, err)

	stats, err := svc.TodayStats(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.SessionsCompleted)
}
