// internal/profile/service.go

package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time. Injected so lifecycle stamps and age
// derivation are testable with a fixed instant.
type Clock func() time.Time

type Service interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*Profile, error)
	SetDealbreakers(ctx context.Context, id uuid.UUID, d Dealbreakers) (*Profile, error)
	SetPacePreferences(ctx context.Context, id uuid.UUID, p PacePreferences) (*Profile, error)
	SetState(ctx context.Context, id uuid.UUID, state State) error
}

type service struct {
	repo  Repository
	clock Clock
}

func NewService(repo Repository, clock Clock) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{repo: repo, clock: clock}
}

func (s *service) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*Profile, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := req.applyTo(*current).Updated(s.clock())
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProfile(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) SetDealbreakers(ctx context.Context, id uuid.UUID, d Dealbreakers) (*Profile, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Dealbreakers = d
	updated = updated.Updated(s.clock())

	if err := s.repo.UpdateProfile(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) SetPacePreferences(ctx context.Context, id uuid.UUID, p PacePreferences) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Pace = p
	updated = updated.Updated(s.clock())

	if err := s.repo.UpdateProfile(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) SetState(ctx context.Context, id uuid.UUID, state State) error {
	return s.repo.SetState(ctx, id, state, s.clock())
}
