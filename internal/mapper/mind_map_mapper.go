package mapper

import (
	"encoding/json"

	"edufocus-be/internal/entity"
	"edufocus-be/internal/model"

	"gorm.io/datatypes"
)

type MindMapMapper struct{}

func NewMindMapMapper() *MindMapMapper {
	return &MindMapMapper{}
}

// DecodeMapData restores the stored node/connection graph. Empty or unset
// blobs decode to an empty object.
func DecodeMapData(stored datatypes.JSON) map[string]interface{} {
	if len(stored) == 0 {
		return map[string]interface{}{}
	}
	var data map[string]interface{}
	if err := json.Unmarshal(stored, &data); err != nil {
		return map[string]interface{}{}
	}
	return data
}

func EncodeMapData(data map[string]interface{}) datatypes.JSON {
	if data == nil {
		data = map[string]interface{}{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}

func (m *MindMapMapper) ToEntity(mm *model.MindMap) *entity.MindMap {
	if mm == nil {
		return nil
	}
	return &entity.MindMap{
		Id:          mm.Id,
		UserId:      mm.UserId,
		Title:       mm.Title,
		Description: mm.Description,
		MapData:     DecodeMapData(mm.MapData),
		CreatedAt:   mm.CreatedAt,
		UpdatedAt:   mm.UpdatedAt,
	}
}

func (m *MindMapMapper) ToModel(mm *entity.MindMap) *model.MindMap {
	if mm == nil {
		return nil
	}
	return &model.MindMap{
		Id:          mm.Id,
		UserId:      mm.UserId,
		Title:       mm.Title,
		Description: mm.Description,
		MapData:     EncodeMapData(mm.MapData),
		CreatedAt:   mm.CreatedAt,
		UpdatedAt:   mm.UpdatedAt,
	}
}

func (m *MindMapMapper) ToEntities(maps []*model.MindMap) []*entity.MindMap {
	entities := make([]*entity.MindMap, len(maps))
	for i, mm := range maps {
		entities[i] = m.ToEntity(mm)
	}
	return entities
}
