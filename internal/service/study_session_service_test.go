package service

import (
	"context"
	"testing"

	"edufocus-be/internal/dto"
	"edufocus-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudySessionCreate(t *testing.T) {
	svc := NewStudySessionService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	res, err := svc.Create(ctx, userId, &dto.CreateStudySessionRequest{
		Subject:  "Mathematics",
		Date:     "2026-01-15",
		Time:     "14:30",
		Duration: 60,
		Goals:    "Finish chapter 3",
	})
	require.NoError(t, err)

	assert.Equal(t, "Mathematics", res.Subject)
	assert.Equal(t, "2026-01-15", res.Date)
	assert.Equal(t, "14:30", res.Time)
	assert.Equal(t, "scheduled", res.Status)
}

func TestStudySessionCreateNormalizesTime(t *testing.T) {
	svc := NewStudySessionService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	// Single-digit hours come back zero-padded.
	res, err := svc.Create(ctx, userId, &dto.CreateStudySessionRequest{
		Subject: "Mathematics",
		Date:    "2026-01-15",
		Time:    "9:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:30", res.Time)

	sessions, err := svc.List(ctx, userId)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "09:30", sessions[0].Time)
}

func TestStudySessionCreateRejectsBadDate(t *testing.T) {
	svc := NewStudySessionService(newTestFactory(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), &dto.CreateStudySessionRequest{
		Subject: "Physics",
		Date:    "15/01/2026",
		Time:    "14:30",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Create(ctx, uuid.New(), &dto.CreateStudySessionRequest{
		Subject: "Physics",
		Date:    "2026-01-15",
		Time:    "2pm",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestStudySessionListOrdersByDateDesc(t *testing.T) {
	svc := NewStudySessionService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	for _, date := range []string{"2026-01-10", "2026-03-05", "2026-02-20"} {
		_, err := svc.Create(ctx, userId, &dto.CreateStudySessionRequest{
			Subject: "History",
			Date:    date,
			Time:    "09:00",
		})
		require.NoError(t, err)
	}

	sessions, err := svc.List(ctx, userId)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "2026-03-05", sessions[0].Date)
	assert.Equal(t, "2026-02-20", sessions[1].Date)
	assert.Equal(t, "2026-01-10", sessions[2].Date)
}

func TestStudySessionUpdatePartial(t *testing.T) {
	svc := NewStudySessionService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateStudySessionRequest{
		Subject:  "Chemistry",
		Date:     "2026-01-15",
		Time:     "14:30",
		Duration: 45,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userId, &dto.UpdateStudySessionRequest{
		Id:     created.Id,
		Status: ptr("completed"),
	})
	require.NoError(t, err)

	// Only status changed; everything else stays.
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, "Chemistry", updated.Subject)
	assert.Equal(t, "2026-01-15", updated.Date)
	assert.Equal(t, 45, updated.Duration)
}

func TestStudySessionUpdateRejectsUnknownStatus(t *testing.T) {
	svc := NewStudySessionService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateStudySessionRequest{
		Subject: "Biology",
		Date:    "2026-01-15",
		Time:    "14:30",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, userId, &dto.UpdateStudySessionRequest{
		Id:     created.Id,
		Status: ptr("paused"),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestStudySessionForeignUserGetsNotFound(t *testing.T) {
	svc := NewStudySessionService(newTestFactory(t))
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(ctx, owner, &dto.CreateStudySessionRequest{
		Subject: "Geography",
		Date:    "2026-01-15",
		Time:    "14:30",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, intruder, &dto.UpdateStudySessionRequest{
		Id:      created.Id,
		Subject: ptr("Hijacked"),
	})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = svc.Delete(ctx, intruder, created.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	// The owner still sees their session untouched.
	sessions, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Geography", sessions[0].Subject)
}

func TestStudySessionDelete(t *testing.T) {
	svc := NewStudySessionService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateStudySessionRequest{
		Subject: "Latin",
		Date:    "2026-01-15",
		Time:    "14:30",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userId, created.Id))

	sessions, err := svc.List(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
