package mapper

import (
	"encoding/json"

	"edufocus-be/internal/entity"
	"edufocus-be/internal/model"

	"gorm.io/datatypes"
)

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

// DecodeQuestions restores the stored question blob. Empty or unset blobs
// decode to an empty list so callers never branch on storage state.
func DecodeQuestions(stored datatypes.JSON) []entity.QuizQuestion {
	if len(stored) == 0 {
		return []entity.QuizQuestion{}
	}
	var questions []entity.QuizQuestion
	if err := json.Unmarshal(stored, &questions); err != nil {
		return []entity.QuizQuestion{}
	}
	return questions
}

func EncodeQuestions(questions []entity.QuizQuestion) datatypes.JSON {
	if questions == nil {
		questions = []entity.QuizQuestion{}
	}
	raw, err := json.Marshal(questions)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

func (m *QuizMapper) ToEntity(q *model.Quiz) *entity.Quiz {
	if q == nil {
		return nil
	}
	return &entity.Quiz{
		Id:         q.Id,
		UserId:     q.UserId,
		Title:      q.Title,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Questions:  DecodeQuestions(q.QuestionsData),
		Score:      q.Score,
		MaxScore:   q.MaxScore,
		Completed:  q.Completed,
		CreatedAt:  q.CreatedAt,
	}
}

func (m *QuizMapper) ToModel(q *entity.Quiz) *model.Quiz {
	if q == nil {
		return nil
	}
	return &model.Quiz{
		Id:            q.Id,
		UserId:        q.UserId,
		Title:         q.Title,
		Topic:         q.Topic,
		Difficulty:    q.Difficulty,
		QuestionsData: EncodeQuestions(q.Questions),
		Score:         q.Score,
		MaxScore:      q.MaxScore,
		Completed:     q.Completed,
		CreatedAt:     q.CreatedAt,
	}
}

func (m *QuizMapper) ToEntities(quizzes []*model.Quiz) []*entity.Quiz {
	entities := make([]*entity.Quiz, len(quizzes))
	for i, q := range quizzes {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
