package instructors

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	instructors *Repository

	logger *zap.Logger
}

func NewService(instructors *Repository, logger *zap.Logger) *Service {
	return &Service{
		instructors: instructors,
		logger:      logger,
	}
}

func (s *Service) Create(ctx context.Context, draft InstructorDraft) (*Instructor, error) {
	logger := s.logger.With(zap.String("name", draft.Name))
	logger.Info("creating instructor")

	instructor, err := s.instructors.Create(ctx, draft)
	if err != nil {
		logger.Error("failed to create instructor", zap.Error(err))
		return nil, err
	}

	logger.Info("instructor created", zap.Uint64("id", instructor.ID))
	return instructor, nil
}

func (s *Service) List(ctx context.Context) ([]Instructor, error) {
	instructors, err := s.instructors.List(ctx)
	if err != nil {
		s.logger.Error("failed to list instructors", zap.Error(err))
		return nil, err
	}

	return instructors, nil
}

func (s *Service) Get(ctx context.Context, id uint64) (*Instructor, error) {
	instructor, err := s.instructors.Get(ctx, id)
	if err != nil {
		s.logger.Error("failed to get instructor", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return instructor, nil
}

func (s *Service) Update(ctx context.Context, id uint64, update InstructorUpdate) (*Instructor, error) {
	logger := s.logger.With(zap.Uint64("id", id))
	logger.Info("updating instructor")

	instructor, err := s.instructors.Update(ctx, id, update)
	if err != nil {
		logger.Error("failed to update instructor", zap.Error(err))
		return nil, err
	}

	logger.Info("instructor updated")
	return instructor, nil
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	logger := s.logger.With(zap.Uint64("id", id))
	logger.Info("deleting instructor")

	if err := s.instructors.Delete(ctx, id); err != nil {
		logger.Error("failed to delete instructor", zap.Error(err))
		return err
	}

	logger.Info("instructor deleted")
	return nil
}
