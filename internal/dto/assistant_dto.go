package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatResponse struct {
	Reply string     `json:"reply"`
	Usage TokenUsage `json:"usage"`
}

type SummarizeVideoRequest struct {
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
}

type SummarizePdfRequest struct {
	Text string `json:"text"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type RecommendationsRequest struct {
	Performance  map[string]interface{} `json:"performance"`
	StudyHistory []string               `json:"study_history"`
}

type RecommendationsResponse struct {
	Recommendations string `json:"recommendations"`
}

type StudyGuideRequest struct {
	Topic  string `json:"topic"`
	Format string `json:"format"`
}

type StudyGuideResponse struct {
	Guide  string `json:"guide"`
	Topic  string `json:"topic"`
	Format string `json:"format"`
}

type AnalyzeMaterialRequest struct {
	Content  string `json:"content"`
	Question string `json:"question"`
}

type AnalyzeMaterialResponse struct {
	Analysis string `json:"analysis"`
}

type ConversationMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
