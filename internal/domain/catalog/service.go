package catalog

import "context"

// Service exposes catalog reads and filtering to the serving surface.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the full catalog in catalog order.
func (s *Service) List(ctx context.Context) ([]Doctor, error) {
	return s.repo.List(ctx)
}

// Get returns a single doctor by id.
func (s *Service) Get(ctx context.Context, id string) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// Search applies the filter engine to the catalog.
func (s *Service) Search(ctx context.Context, p FilterParams) ([]Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(doctors, p), nil
}

// Specialties returns the selector options for the specialty filter.
func (s *Service) Specialties(ctx context.Context) ([]string, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Specialties(doctors), nil
}
