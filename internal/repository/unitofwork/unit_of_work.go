package unitofwork

import (
	"context"

	"edufocus-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	StudySessionRepository() contract.StudySessionRepository
	FlashcardDeckRepository() contract.FlashcardDeckRepository
	FlashcardRepository() contract.FlashcardRepository
	NoteRepository() contract.NoteRepository
	QuizRepository() contract.QuizRepository
	MindMapRepository() contract.MindMapRepository
	PomodoroRepository() contract.PomodoroRepository
	ConversationRepository() contract.ConversationRepository
}
