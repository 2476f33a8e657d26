package service

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"edufocus-be/internal/constant"
	"edufocus-be/internal/dto"
	"edufocus-be/internal/entity"
	"edufocus-be/internal/pkg/apperror"
	"edufocus-be/internal/repository/contract"
	"edufocus-be/internal/repository/unitofwork"
	"edufocus-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider records what it was asked and plays back a canned reply.
type fakeProvider struct {
	lastHistory []llm.Message
	lastPrompt  string
	lastOptions llm.Options
	reply       string
	err         error
	calls       int
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (*llm.Completion, error) {
	p.calls++
	p.lastHistory = history
	p.lastOptions = llm.Options{}
	for _, opt := range options {
		opt(&p.lastOptions)
	}
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Completion{Text: p.reply, Usage: llm.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}}, nil
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (*llm.Completion, error) {
	p.calls++
	p.lastPrompt = prompt
	p.lastOptions = llm.Options{}
	for _, opt := range options {
		opt(&p.lastOptions)
	}
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Completion{Text: p.reply}, nil
}

func TestAssistantChat(t *testing.T) {
	provider := &fakeProvider{reply: "Photosynthesis converts light into energy."}
	svc := NewAssistantService(newTestFactory(t), provider)
	ctx := context.Background()
	userId := uuid.New()

	res, err := svc.Chat(ctx, userId, &dto.ChatRequest{Message: "Explain photosynthesis"})
	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis converts light into energy.", res.Reply)
	assert.Equal(t, 15, res.Usage.TotalTokens)

	// System prompt leads, user message trails.
	require.NotEmpty(t, provider.lastHistory)
	assert.Equal(t, constant.AssistantRoleSystem, provider.lastHistory[0].Role)
	assert.Equal(t, constant.SystemPromptChat, provider.lastHistory[0].Content)
	last := provider.lastHistory[len(provider.lastHistory)-1]
	assert.Equal(t, constant.AssistantRoleUser, last.Role)
	assert.Equal(t, "Explain photosynthesis", last.Content)

	// Both turns were persisted.
	history, err := svc.History(ctx, userId)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "Explain photosynthesis", history[0].Content)
	assert.Equal(t, "assistant", history[1].Role)
}

func TestAssistantChatRejectsEmptyMessage(t *testing.T) {
	provider := &fakeProvider{reply: "unused"}
	svc := NewAssistantService(newTestFactory(t), provider)

	_, err := svc.Chat(context.Background(), uuid.New(), &dto.ChatRequest{Message: "   "})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Zero(t, provider.calls)
}

func TestAssistantChatTrimsHistory(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc := NewAssistantService(newTestFactory(t), provider)

	turns := make([]dto.ChatTurn, 0, 25)
	for i := 0; i < 25; i++ {
		turns = append(turns, dto.ChatTurn{Role: "user", Content: "turn"})
	}

	_, err := svc.Chat(context.Background(), uuid.New(), &dto.ChatRequest{
		Message: "latest",
		History: turns,
	})
	require.NoError(t, err)

	// system + capped history + current message
	assert.Len(t, provider.lastHistory, constant.MaxHistoryTurns+2)
}

func TestAssistantChatMapsProviderErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind apperror.Kind
	}{
		{"auth", llm.ErrAuthentication, apperror.KindAuth},
		{"rate limit", llm.ErrRateLimited, apperror.KindRateLimit},
		{"other", assert.AnError, apperror.KindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{err: tc.err}
			svc := NewAssistantService(newTestFactory(t), provider)

			_, err := svc.Chat(context.Background(), uuid.New(), &dto.ChatRequest{Message: "hi"})
			assert.Equal(t, tc.kind, apperror.KindOf(err))
		})
	}
}

func TestAssistantSummarizePdfTruncates(t *testing.T) {
	provider := &fakeProvider{reply: "summary"}
	svc := NewAssistantService(newTestFactory(t), provider)

	longText := strings.Repeat("a", 10000)
	_, err := svc.SummarizePdf(context.Background(), &dto.SummarizePdfRequest{Text: longText})
	require.NoError(t, err)

	assert.NotContains(t, provider.lastPrompt, strings.Repeat("a", constant.MaxPdfTextChars+1))
	assert.Contains(t, provider.lastPrompt, strings.Repeat("a", constant.MaxPdfTextChars))
	assert.Equal(t, constant.MaxTokensPdfSummary, provider.lastOptions.MaxTokens)
}

func TestAssistantSummarizeVideo(t *testing.T) {
	provider := &fakeProvider{reply: "video summary"}
	svc := NewAssistantService(newTestFactory(t), provider)

	res, err := svc.SummarizeVideo(context.Background(), &dto.SummarizeVideoRequest{
		Title:      "Intro to Calculus",
		Transcript: "Today we discuss limits.",
	})
	require.NoError(t, err)
	assert.Equal(t, "video summary", res.Summary)
	assert.Contains(t, provider.lastPrompt, "Intro to Calculus")
	assert.Contains(t, provider.lastPrompt, "Today we discuss limits.")

	_, err = svc.SummarizeVideo(context.Background(), &dto.SummarizeVideoRequest{Title: "Silent"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestAssistantRecommendationsFillsPlaceholders(t *testing.T) {
	provider := &fakeProvider{reply: "study more"}
	svc := NewAssistantService(newTestFactory(t), provider)

	_, err := svc.Recommendations(context.Background(), &dto.RecommendationsRequest{})
	require.NoError(t, err)
	assert.Contains(t, provider.lastPrompt, "N/A")
	assert.Contains(t, provider.lastPrompt, "various subjects")

	_, err = svc.Recommendations(context.Background(), &dto.RecommendationsRequest{
		Performance:  map[string]interface{}{"average_focus": 7.5, "sessions_completed": 12},
		StudyHistory: []string{"algebra", "chemistry"},
	})
	require.NoError(t, err)
	assert.Contains(t, provider.lastPrompt, "7.5")
	assert.Contains(t, provider.lastPrompt, "12")
	assert.Contains(t, provider.lastPrompt, "algebra, chemistry")
}

func TestAssistantStudyGuideFormatFallback(t *testing.T) {
	provider := &fakeProvider{reply: "guide"}
	svc := NewAssistantService(newTestFactory(t), provider)

	res, err := svc.StudyGuide(context.Background(), &dto.StudyGuideRequest{
		Topic:  "Photosynthesis",
		Format: "interpretive-dance",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.StudyGuideFormatComprehensive, res.Format)
	assert.Contains(t, provider.lastPrompt, constant.StudyGuideInstructions[constant.StudyGuideFormatComprehensive])

	res, err = svc.StudyGuide(context.Background(), &dto.StudyGuideRequest{
		Topic:  "Photosynthesis",
		Format: "flashcards",
	})
	require.NoError(t, err)
	assert.Equal(t, "flashcards", res.Format)

	_, err = svc.StudyGuide(context.Background(), &dto.StudyGuideRequest{Format: "quick"})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestAssistantAnalyzeMaterial(t *testing.T) {
	provider := &fakeProvider{reply: "analysis"}
	svc := NewAssistantService(newTestFactory(t), provider)

	// Without a question the generic analysis prompt runs.
	_, err := svc.AnalyzeMaterial(context.Background(), &dto.AnalyzeMaterialRequest{
		Content: "The mitochondria is the powerhouse of the cell.",
	})
	require.NoError(t, err)
	assert.Contains(t, provider.lastPrompt, "Main topics covered")

	// With a question the prompt pivots to answering it.
	_, err = svc.AnalyzeMaterial(context.Background(), &dto.AnalyzeMaterialRequest{
		Content:  "The mitochondria is the powerhouse of the cell.",
		Question: "What does the mitochondria do?",
	})
	require.NoError(t, err)
	assert.Contains(t, provider.lastPrompt, "What does the mitochondria do?")

	// Long material is capped.
	_, err = svc.AnalyzeMaterial(context.Background(), &dto.AnalyzeMaterialRequest{
		Content: strings.Repeat("b", 9000),
	})
	require.NoError(t, err)
	assert.NotContains(t, provider.lastPrompt, strings.Repeat("b", constant.MaxMaterialChars+1))
}

// failingConversationFactory fails the nth conversation insert so tests can
// observe what a half-written chat exchange leaves behind.
type failingConversationFactory struct {
	unitofwork.RepositoryFactory
	failOn int
}

func (f *failingConversationFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &failingConversationUow{
		UnitOfWork: f.RepositoryFactory.NewUnitOfWork(ctx),
		failOn:     f.failOn,
		calls:      new(int),
	}
}

type failingConversationUow struct {
	unitofwork.UnitOfWork
	failOn int
	calls  *int
}

func (u *failingConversationUow) ConversationRepository() contract.ConversationRepository {
	return &failingConversationRepo{
		ConversationRepository: u.UnitOfWork.ConversationRepository(),
		failOn:                 u.failOn,
		calls:                  u.calls,
	}
}

type failingConversationRepo struct {
	contract.ConversationRepository
	failOn int
	calls  *int
}

func (r *failingConversationRepo) Create(ctx context.Context, message *entity.ConversationMessage) error {
	*r.calls++
	if *r.calls == r.failOn {
		return assert.AnError
	}
	return r.ConversationRepository.Create(ctx, message)
}

func TestAssistantChatRollsBackOnPersistFailure(t *testing.T) {
	provider := &fakeProvider{reply: "reply"}
	factory := &failingConversationFactory{RepositoryFactory: newTestFactory(t), failOn: 2}
	svc := NewAssistantService(factory, provider)
	ctx := context.Background()
	userId := uuid.New()

	_, err := svc.Chat(ctx, userId, &dto.ChatRequest{Message: "hello"})
	require.Error(t, err)

	// No partial exchange survives: the user turn rolled back with the
	// failed assistant turn.
	history, err := svc.History(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTruncateRespectsRuneBoundaries(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab", truncate("abcd", 2))
	assert.Equal(t, "你", truncate("你好", 4))
}

func TestAssistantSummarizePdfKeepsRunesIntact(t *testing.T) {
	provider := &fakeProvider{reply: "summary"}
	svc := NewAssistantService(newTestFactory(t), provider)

	longText := strings.Repeat("你", 5000)
	_, err := svc.SummarizePdf(context.Background(), &dto.SummarizePdfRequest{Text: longText})
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(provider.lastPrompt))
}

func TestAssistantClearHistory(t *testing.T) {
	provider := &fakeProvider{reply: "hello"}
	svc := NewAssistantService(newTestFactory(t), provider)
	ctx := context.Background()
	userId := uuid.New()
	other := uuid.New()

	_, err := svc.Chat(ctx, userId, &dto.ChatRequest{Message: "first"})
	require.NoError(t, err)
	_, err = svc.Chat(ctx, other, &dto.ChatRequest{Message: "second"})
	require.NoError(t, err)

	require.NoError(t, svc.ClearHistory(ctx, userId))

	history, err := svc.History(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, history)

	// Other users keep their history.
	history, err = svc.History(ctx, other)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
