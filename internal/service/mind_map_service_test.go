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

func TestMindMapCreateAndList(t *testing.T) {
	svc := NewMindMapService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateMindMapRequest{
		Title: "Cell Biology",
		MapData: map[string]interface{}{
			"root":     "Cell",
			"children": []interface{}{"Nucleus", "Membrane"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cell", created.MapData["root"])

	maps, err := svc.List(ctx, userId)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, "Cell Biology", maps[0].Title)
	children, ok := maps[0].MapData["children"].([]interface{})
	require.True(t, ok)
	assert.Len(t, children, 2)
}

func TestMindMapCreateWithoutData(t *testing.T) {
	svc := NewMindMapService(newTestFactory(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, uuid.New(), &dto.CreateMindMapRequest{Title: "Blank"})
	require.NoError(t, err)
	assert.NotNil(t, created.MapData)
	assert.Empty(t, created.MapData)
}

func TestMindMapUpdatePartial(t *testing.T) {
	svc := NewMindMapService(newTestFactory(t))
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateMindMapRequest{
		Title:   "Original",
		MapData: map[string]interface{}{"root": "A"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userId, &dto.UpdateMindMapRequest{
		Id:    created.Id,
		Title: ptr("Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "A", updated.MapData["root"])

	newData := map[string]interface{}{"root": "B"}
	updated, err = svc.Update(ctx, userId, &dto.UpdateMindMapRequest{
		Id:      created.Id,
		MapData: &newData,
	})
	require.NoError(t, err)
	assert.Equal(t, "B", updated.MapData["root"])
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestMindMapForeignUserGetsNotFound(t *testing.T) {
	svc := NewMindMapService(newTestFactory(t))
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(ctx, owner, &dto.CreateMindMapRequest{Title: "Private"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, intruder, &dto.UpdateMindMapRequest{
		Id:    created.Id,
		Title: ptr("Taken"),
	})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = svc.Delete(ctx, intruder, created.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
