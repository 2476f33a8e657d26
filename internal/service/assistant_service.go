package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"edufocus-be/internal/constant"
	"edufocus-be/internal/dto"
	"edufocus-be/internal/entity"
	"edufocus-be/internal/pkg/apperror"
	"edufocus-be/internal/repository/specification"
	"edufocus-be/internal/repository/unitofwork"
	"edufocus-be/pkg/llm"

	"github.com/google/uuid"
)

type IAssistantService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	SummarizeVideo(ctx context.Context, req *dto.SummarizeVideoRequest) (*dto.SummaryResponse, error)
	SummarizePdf(ctx context.Context, req *dto.SummarizePdfRequest) (*dto.SummaryResponse, error)
	Recommendations(ctx context.Context, req *dto.RecommendationsRequest) (*dto.RecommendationsResponse, error)
	StudyGuide(ctx context.Context, req *dto.StudyGuideRequest) (*dto.StudyGuideResponse, error)
	AnalyzeMaterial(ctx context.Context, req *dto.AnalyzeMaterialRequest) (*dto.AnalyzeMaterialResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]dto.ConversationMessageResponse, error)
	ClearHistory(ctx context.Context, userId uuid.UUID) error
}

type assistantService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.LLMProvider
}

func NewAssistantService(uowFactory unitofwork.RepositoryFactory, provider llm.LLMProvider) IAssistantService {
	return &assistantService{
		uowFactory: uowFactory,
		provider:   provider,
	}
}

// mapProviderError translates provider sentinels into the service error
// taxonomy so controllers return the right status.
func mapProviderError(err error) error {
	switch {
	case errors.Is(err, llm.ErrAuthentication):
		return apperror.Auth("assistant provider rejected credentials")
	case errors.Is(err, llm.ErrRateLimited):
		return apperror.RateLimit("assistant provider rate limit exceeded")
	default:
		return apperror.Internal("assistant request failed", err)
	}
}

// truncate caps s at max bytes without cutting a rune in half.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func (s *assistantService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperror.Validation("message must not be empty")
	}

	messages := make([]llm.Message, 0, constant.MaxHistoryTurns+2)
	messages = append(messages, llm.Message{
		Role:    constant.AssistantRoleSystem,
		Content: constant.SystemPromptChat,
	})

	history := req.History
	if len(history) > constant.MaxHistoryTurns {
		history = history[len(history)-constant.MaxHistoryTurns:]
	}
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{
		Role:    constant.AssistantRoleUser,
		Content: req.Message,
	})

	completion, err := s.provider.Chat(ctx, messages,
		llm.WithTemperature(constant.TemperatureConversational),
		llm.WithMaxTokens(constant.MaxTokensChat),
	)
	if err != nil {
		return nil, mapProviderError(err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	userTurn := entity.ConversationMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      entity.ConversationRoleUser,
		Content:   req.Message,
		CreatedAt: now,
	}
	// The assistant turn sorts after the user turn even at coarse clock
	// resolution.
	assistantTurn := entity.ConversationMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      entity.ConversationRoleAssistant,
		Content:   completion.Text,
		CreatedAt: now.Add(time.Millisecond),
	}
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ConversationRepository().Create(ctx, &userTurn); err != nil {
		return nil, err
	}
	if err := uow.ConversationRepository().Create(ctx, &assistantTurn); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Reply: completion.Text,
		Usage: dto.TokenUsage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}, nil
}

func (s *assistantService) SummarizeVideo(ctx context.Context, req *dto.SummarizeVideoRequest) (*dto.SummaryResponse, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, apperror.Validation("transcript must not be empty")
	}

	prompt := fmt.Sprintf(constant.PromptVideoSummary, req.Title, req.Transcript)
	completion, err := s.provider.Generate(ctx, prompt,
		llm.WithTemperature(constant.TemperatureFactual),
		llm.WithMaxTokens(constant.MaxTokensVideoSummary),
	)
	if err != nil {
		return nil, mapProviderError(err)
	}

	return &dto.SummaryResponse{Summary: completion.Text}, nil
}

func (s *assistantService) SummarizePdf(ctx context.Context, req *dto.SummarizePdfRequest) (*dto.SummaryResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperror.Validation("text must not be empty")
	}

	prompt := fmt.Sprintf(constant.PromptPdfSummary, truncate(req.Text, constant.MaxPdfTextChars))
	completion, err := s.provider.Generate(ctx, prompt,
		llm.WithTemperature(constant.TemperatureFactual),
		llm.WithMaxTokens(constant.MaxTokensPdfSummary),
	)
	if err != nil {
		return nil, mapProviderError(err)
	}

	return &dto.SummaryResponse{Summary: completion.Text}, nil
}

// performanceField renders one metric from the loosely typed performance map,
// substituting a placeholder when absent.
func performanceField(performance map[string]interface{}, key string) string {
	if performance == nil {
		return "N/A"
	}
	value, ok := performance[key]
	if !ok || value == nil {
		return "N/A"
	}
	return fmt.Sprintf("%v", value)
}

func (s *assistantService) Recommendations(ctx context.Context, req *dto.RecommendationsRequest) (*dto.RecommendationsResponse, error) {
	subjects := "various subjects"
	if len(req.StudyHistory) > 0 {
		subjects = strings.Join(req.StudyHistory, ", ")
	}

	prompt := fmt.Sprintf(constant.PromptRecommendations,
		performanceField(req.Performance, "average_focus"),
		performanceField(req.Performance, "sessions_completed"),
		subjects,
	)
	completion, err := s.provider.Generate(ctx, prompt,
		llm.WithTemperature(constant.TemperatureConversational),
		llm.WithMaxTokens(constant.MaxTokensRecommendations),
	)
	if err != nil {
		return nil, mapProviderError(err)
	}

	return &dto.RecommendationsResponse{Recommendations: completion.Text}, nil
}

func (s *assistantService) StudyGuide(ctx context.Context, req *dto.StudyGuideRequest) (*dto.StudyGuideResponse, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, apperror.Validation("topic must not be empty")
	}

	format := req.Format
	instructions, ok := constant.StudyGuideInstructions[format]
	if !ok {
		format = constant.StudyGuideFormatComprehensive
		instructions = constant.StudyGuideInstructions[format]
	}

	prompt := fmt.Sprintf(constant.PromptStudyGuide, req.Topic, instructions)
	completion, err := s.provider.Generate(ctx, prompt,
		llm.WithTemperature(constant.TemperatureConversational),
		llm.WithMaxTokens(constant.MaxTokensStudyGuide),
	)
	if err != nil {
		return nil, mapProviderError(err)
	}

	return &dto.StudyGuideResponse{
		Guide:  completion.Text,
		Topic:  req.Topic,
		Format: format,
	}, nil
}

func (s *assistantService) AnalyzeMaterial(ctx context.Context, req *dto.AnalyzeMaterialRequest) (*dto.AnalyzeMaterialResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.Validation("content must not be empty")
	}

	material := truncate(req.Content, constant.MaxMaterialChars)
	var prompt string
	if strings.TrimSpace(req.Question) != "" {
		prompt = fmt.Sprintf(constant.PromptAnalyzeWithQuestion, material, req.Question)
	} else {
		prompt = fmt.Sprintf(constant.PromptAnalyze, material)
	}

	completion, err := s.provider.Generate(ctx, prompt,
		llm.WithTemperature(constant.TemperatureFactual),
		llm.WithMaxTokens(constant.MaxTokensAnalysis),
	)
	if err != nil {
		return nil, mapProviderError(err)
	}

	return &dto.AnalyzeMaterialResponse{Analysis: completion.Text}, nil
}

func (s *assistantService) History(ctx context.Context, userId uuid.UUID) ([]dto.ConversationMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ConversationRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ConversationMessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, dto.ConversationMessageResponse{
			Id:        message.Id,
			Role:      string(message.Role),
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		})
	}
	return responses, nil
}

func (s *assistantService) ClearHistory(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ConversationRepository().DeleteAllByUserId(ctx, userId)
}
