package constant

const (
	AssistantRoleUser      = "user"
	AssistantRoleAssistant = "assistant"
	AssistantRoleSystem    = "system"

	// SystemPromptChat frames every conversational exchange.
	SystemPromptChat = "You are a helpful AI study assistant. Help students with their studies, answer questions, and provide educational support."

	// MaxHistoryTurns is the number of prior turns replayed into a chat request.
	MaxHistoryTurns = 10

	// Input caps applied before submission. Truncation is silent.
	MaxPdfTextChars  = 4000
	MaxMaterialChars = 3000

	// Output budgets per operation.
	MaxTokensChat            = 1000
	MaxTokensVideoSummary    = 500
	MaxTokensPdfSummary      = 800
	MaxTokensRecommendations = 500
	MaxTokensStudyGuide      = 1500
	MaxTokensAnalysis        = 800

	// Factual summarization runs cooler than conversational tasks.
	TemperatureFactual        = 0.5
	TemperatureConversational = 0.7
)

const (
	StudyGuideFormatComprehensive = "comprehensive"
	StudyGuideFormatQuick         = "quick"
	StudyGuideFormatFlashcards    = "flashcards"
	StudyGuideFormatMindmap       = "mindmap"
)

// StudyGuideInstructions selects the generation style per requested format.
// Unknown formats fall back to the comprehensive template.
var StudyGuideInstructions = map[string]string{
	StudyGuideFormatComprehensive: "Create a detailed study guide with explanations, examples, and practice questions.",
	StudyGuideFormatQuick:         "Create a quick reference guide with key points and definitions.",
	StudyGuideFormatFlashcards:    "Generate 10 flashcard-style Q&A pairs.",
	StudyGuideFormatMindmap:       "Outline main concepts and their relationships in a hierarchical structure.",
}

const (
	PromptVideoSummary = `Summarize this educational video titled "%s":

%s

Provide:
1. A concise summary
2. Key points (3-5 bullet points)
3. Main takeaways`

	PromptPdfSummary = `Summarize this document:

%s

Provide:
1. Main topic and purpose
2. Key concepts (3-5 points)
3. Important details
4. Conclusion`

	PromptRecommendations = `Based on this student's performance data:
- Average focus level: %s
- Study sessions completed: %s
- Subjects studied: %s

Provide 3-5 personalized study recommendations to improve their learning.`

	PromptStudyGuide = `Topic: %s

%s`

	PromptAnalyzeWithQuestion = `Based on this study material:

%s

Answer this question: %s`

	PromptAnalyze = `Analyze this study material and provide:
1. Main topics covered
2. Key concepts
3. Summary

Material:
%s`
)
