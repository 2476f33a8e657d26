package mapper

import (
	"testing"

	"edufocus-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestQuestionsRoundtrip(t *testing.T) {
	questions := []entity.QuizQuestion{
		{"question": "2+2?", "answer": "4"},
		{"question": "capital of France?", "answer": "Paris", "options": []interface{}{"Paris", "Lyon"}},
	}

	decoded := DecodeQuestions(EncodeQuestions(questions))
	require.Len(t, decoded, 2)
	assert.Equal(t, "4", decoded[0]["answer"])
	assert.Equal(t, "capital of France?", decoded[1]["question"])
}

func TestDecodeQuestionsEmpty(t *testing.T) {
	assert.Equal(t, []entity.QuizQuestion{}, DecodeQuestions(nil))
	assert.Equal(t, []entity.QuizQuestion{}, DecodeQuestions(datatypes.JSON("")))
	assert.Equal(t, []entity.QuizQuestion{}, DecodeQuestions(datatypes.JSON("not json")))
}

func TestEncodeQuestionsNil(t *testing.T) {
	assert.Equal(t, datatypes.JSON("[]"), EncodeQuestions(nil))
}
