package service

import (
	"context"
	"time"

	"edufocus-be/internal/dto"
	"edufocus-be/internal/entity"
	"edufocus-be/internal/pkg/apperror"
	"edufocus-be/internal/repository/specification"
	"edufocus-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IQuizService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.QuizResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	Complete(ctx context.Context, userId uuid.UUID, req *dto.CompleteQuizRequest) (*dto.QuizResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type quizService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuizService(uowFactory unitofwork.RepositoryFactory) IQuizService {
	return &quizService{
		uowFactory: uowFactory,
	}
}

func toQuizResponse(q *entity.Quiz) *dto.QuizResponse {
	return &dto.QuizResponse{
		Id:         q.Id,
		Title:      q.Title,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Questions:  q.Questions,
		Score:      q.Score,
		MaxScore:   q.MaxScore,
		Completed:  q.Completed,
		CreatedAt:  q.CreatedAt,
	}
}

func (s *quizService) List(ctx context.Context, userId uuid.UUID) ([]*dto.QuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quizzes, err := uow.QuizRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.QuizResponse, len(quizzes))
	for i, quiz := range quizzes {
		response[i] = toQuizResponse(quiz)
	}
	return response, nil
}

func (s *quizService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questions := req.Questions
	if questions == nil {
		questions = []entity.QuizQuestion{}
	}

	quiz := entity.Quiz{
		Id:         uuid.New(),
		UserId:     userId,
		Title:      req.Title,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Questions:  questions,
		MaxScore:   len(questions),
		Completed:  false,
		CreatedAt:  time.Now(),
	}

	if err := uow.QuizRepository().Create(ctx, &quiz); err != nil {
		return nil, err
	}

	return toQuizResponse(&quiz), nil
}

func (s *quizService) Complete(ctx context.Context, userId uuid.UUID, req *dto.CompleteQuizRequest) (*dto.QuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperror.NotFound("quiz not found")
	}

	if req.Score < 0 || req.Score > quiz.MaxScore {
		return nil, apperror.Validation("score must be between 0 and max_score")
	}

	score := req.Score
	quiz.Score = &score
	quiz.Completed = true

	if err := uow.QuizRepository().Update(ctx, quiz); err != nil {
		return nil, err
	}

	return toQuizResponse(quiz), nil
}

func (s *quizService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quiz, err := uow.QuizRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if quiz == nil {
		return apperror.NotFound("quiz not found")
	}

	return uow.QuizRepository().Delete(ctx, id)
}
