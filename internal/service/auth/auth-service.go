package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"HotelOS/entity"
	"HotelOS/internal/lib/sl"
)

type Repository interface {
	GetUserByToken(ctx context.Context, token string) (*entity.UserProfile, error)
	GetUser(ctx context.Context, uid string) (*entity.UserProfile, error)
	GetAllUsers(ctx context.Context) ([]entity.UserProfile, error)
}

// Service resolves session tokens to user profiles. Token issuance is an
// external collaborator; this only matches tokens already stored on the
// profile.
type Service struct {
	repository Repository
	mu         sync.Mutex
	byToken    map[string]*entity.UserProfile
	log        *slog.Logger
}

func NewAuthService(logger *slog.Logger) *Service {
	return &Service{
		byToken: make(map[string]*entity.UserProfile),
		log:     logger.With(sl.Module("auth-service")),
	}
}

func (s *Service) SetRepository(repository Repository) {
	s.repository = repository
}

func (s *Service) AuthenticateByToken(ctx context.Context, token string) (*entity.UserProfile, error) {
	s.mu.Lock()
	if user, ok := s.byToken[token]; ok {
		s.mu.Unlock()
		return user, nil
	}
	s.mu.Unlock()

	if s.repository == nil {
		return nil, fmt.Errorf("authentication not enabled")
	}
	user, err := s.repository.GetUserByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("token not found")
	}

	s.mu.Lock()
	s.byToken[token] = user
	s.mu.Unlock()
	return user, nil
}

// InvalidateToken drops a cached profile, used on logout so the next
// request re-resolves against the repository.
func (s *Service) InvalidateToken(token string) {
	s.mu.Lock()
	delete(s.byToken, token)
	s.mu.Unlock()
}

func (s *Service) GetUser(ctx context.Context, uid string) (*entity.UserProfile, error) {
	if s.repository == nil {
		return nil, fmt.Errorf("authentication not enabled")
	}
	return s.repository.GetUser(ctx, uid)
}

func (s *Service) GetAllUsers(ctx context.Context) ([]entity.UserProfile, error) {
	if s.repository == nil {
		return nil, fmt.Errorf("authentication not enabled")
	}
	return s.repository.GetAllUsers(ctx)
}
