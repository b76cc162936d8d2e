package workshops

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	workshops *Repository

	logger *zap.Logger
}

func NewService(workshops *Repository, logger *zap.Logger) *Service {
	return &Service{
		workshops: workshops,
		logger:    logger,
	}
}

func (s *Service) Create(ctx context.Context, draft WorkshopDraft) (*Workshop, error) {
	s.logger.Info("creating workshop", zap.String("subject", draft.Subject))

	workshop, err := s.workshops.Create(ctx, draft)
	if err != nil {
		s.logger.Error("failed to create workshop", zap.String("subject", draft.Subject), zap.Error(err))
		return nil, err
	}

	s.logger.Info("workshop created", zap.Uint64("id", workshop.ID))
	return workshop, nil
}

func (s *Service) List(ctx context.Context) ([]Workshop, error) {
	s.logger.Debug("listing workshops")

	workshops, err := s.workshops.List(ctx)
	if err != nil {
		s.logger.Error("failed to list workshops", zap.Error(err))
		return nil, err
	}

	return workshops, nil
}

func (s *Service) Get(ctx context.Context, id uint64) (*Workshop, error) {
	s.logger.Debug("getting workshop", zap.Uint64("id", id))

	workshop, err := s.workshops.Get(ctx, id)
	if err != nil {
		s.logger.Error("failed to get workshop", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return workshop, nil
}

// Update overwrites the supplied fields. Referenced names are not checked.
func (s *Service) Update(ctx context.Context, id uint64, update WorkshopUpdate) (*Workshop, error) {
	s.logger.Info("updating workshop", zap.Uint64("id", id))

	workshop, err := s.workshops.Update(ctx, id, update)
	if err != nil {
		s.logger.Error("failed to update workshop", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("workshop updated", zap.Uint64("id", id))
	return workshop, nil
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	s.logger.Info("deleting workshop", zap.Uint64("id", id))

	if err := s.workshops.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete workshop", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("workshop deleted", zap.Uint64("id", id))
	return nil
}
