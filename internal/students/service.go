package students

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	students *Repository

	logger *zap.Logger
}

func NewService(students *Repository, logger *zap.Logger) *Service {
	return &Service{
		students: students,
		logger:   logger,
	}
}

// Create stores a new student. Names are unique.
func (s *Service) Create(ctx context.Context, draft StudentDraft) (*Student, error) {
	s.logger.Info("creating student", zap.String("name", draft.Name))

	student, err := s.students.Create(ctx, draft)
	if err != nil {
		s.logger.Error("failed to create student", zap.String("name", draft.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("student created", zap.Uint64("id", student.ID))
	return student, nil
}

// List returns all students in creation order.
func (s *Service) List(ctx context.Context) ([]Student, error) {
	s.logger.Debug("listing students")

	students, err := s.students.List(ctx)
	if err != nil {
		s.logger.Error("failed to list students", zap.Error(err))
		return nil, err
	}

	return students, nil
}

func (s *Service) Get(ctx context.Context, id uint64) (*Student, error) {
	s.logger.Debug("getting student", zap.Uint64("id", id))

	student, err := s.students.Get(ctx, id)
	if err != nil {
		s.logger.Error("failed to get student", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return student, nil
}

// Update overwrites the supplied fields.
func (s *Service) Update(ctx context.Context, id uint64, update StudentUpdate) (*Student, error) {
	s.logger.Info("updating student", zap.Uint64("id", id))

	student, err := s.students.Update(ctx, id, update)
	if err != nil {
		s.logger.Error("failed to update student", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("student updated", zap.Uint64("id", id))
	return student, nil
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	s.logger.Info("deleting student", zap.Uint64("id", id))

	if err := s.students.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete student", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("student deleted", zap.Uint64("id", id))
	return nil
}
