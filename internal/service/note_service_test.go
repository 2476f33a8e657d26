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

func TestNoteCreateWithTags(t *testing.T) {
	svc := NewNoteService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	note, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:   "Mitosis",
		Content: "Cell division stages",
		Tags:    []string{"biology", "exam"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"biology", "exam"}, note.Tags)

	notes, err := svc.List(ctx, userId)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, []string{"biology", "exam"}, notes[0].Tags)
}

func TestNoteWithoutTags(t *testing.T) {
	svc := NewNoteService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	note, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:   "Untagged",
		Content: "nothing here",
	})
	require.NoError(t, err)
	assert.Empty(t, note.Tags)
}

func TestNoteUpdateTags(t *testing.T) {
	svc := NewNoteService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	note, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:   "Trig identities",
		Content: "sin^2 + cos^2 = 1",
		Tags:    []string{"math"},
	})
	require.NoError(t, err)

	// Nil tags pointer leaves the tags alone.
	updated, err := svc.Update(ctx, userId, &dto.UpdateNoteRequest{
		Id:    note.Id,
		Title: ptr("Trigonometric identities"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"math"}, updated.Tags)
	assert.Equal(t, "Trigonometric identities", updated.Title)

	// Replacing tags.
	updated, err = svc.Update(ctx, userId, &dto.UpdateNoteRequest{
		Id:   note.Id,
		Tags: ptr([]string{"math", "formulas"}),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "formulas"}, updated.Tags)

	// An explicit empty slice clears them.
	updated, err = svc.Update(ctx, userId, &dto.UpdateNoteRequest{
		Id:   note.Id,
		Tags: ptr([]string{}),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestNoteUpdateAdvancesUpdatedAt(t *testing.T) {
	svc := NewNoteService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	note, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:   "Draft",
		Content: "v1",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userId, &dto.UpdateNoteRequest{
		Id:      note.Id,
		Content: ptr("v2"),
	})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(note.UpdatedAt))
}

func TestNoteForeignUserGetsNotFound(t *testing.T) {
	svc := NewNoteService(newTestFactory(t))
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	note, err := svc.Create(ctx, owner, &dto.CreateNoteRequest{
		Title:   "Secret",
		Content: "do not read",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, intruder, &dto.UpdateNoteRequest{
		Id:    note.Id,
		Title: ptr("Stolen"),
	})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = svc.Delete(ctx, intruder, note.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
