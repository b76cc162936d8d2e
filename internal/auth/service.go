package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const dummyPassword = "codebar-dummy-password"

type Service struct {
	users   *Repository
	tokens  *TokenIssuer
	metrics *Metrics

	cost int
	// dummyHash is compared against for unknown users
	dummyHash []byte

	logger *zap.Logger
}

func NewService(
	config Config,
	users *Repository,
	tokens *TokenIssuer,
	metrics *Metrics,
	logger *zap.Logger,
) (*Service, error) {
	cost := config.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &Service{
		users:   users,
		tokens:  tokens,
		metrics: metrics,

		cost:      cost,
		dummyHash: dummyHash,

		logger: logger,
	}, nil
}

// Register creates a credential. No token is issued.
func (s *Service) Register(ctx context.Context, draft UserDraft) (*User, error) {
	logger := s.logger.With(zap.String("username", draft.Username))
	logger.Info("registering user")

	user, err := s.register(ctx, draft)
	s.metrics.registration(err)
	if err != nil {
		logger.Error("failed to register user", zap.Error(err))
		return nil, err
	}

	logger.Info("user registered", zap.Uint64("id", user.ID))
	return user, nil
}

func (s *Service) register(ctx context.Context, draft UserDraft) (*User, error) {
	hash, err := s.hash(draft.Password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, draft.Username, hash, draft.Role)
}

// Login checks the password and issues an access token. Unknown users and
// wrong passwords fail with the same ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*Token, error) {
	logger := s.logger.With(zap.String("username", username))

	token, err := s.login(ctx, username, password)
	s.metrics.login(err)
	if err != nil {
		logger.Warn("login failed", zap.Error(err))
		return nil, err
	}

	logger.Info("user logged in")
	return token, nil
}

func (s *Service) login(ctx context.Context, username, password string) (*Token, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); cmpErr != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.Username, time.Now())
	if err != nil {
		return nil, err
	}

	return &Token{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
	}, nil
}

// Authenticate resolves a bearer token to the stored user.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Debug("token rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateSelf overwrites the supplied fields of the current user.
func (s *Service) UpdateSelf(ctx context.Context, username string, update UserUpdate) (*User, error) {
	logger := s.logger.With(zap.String("username", username))
	logger.Info("updating user")

	current, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Error("failed to get user", zap.Error(err))
		return nil, err
	}

	var hash string
	if update.Password != nil {
		if hash, err = s.hash(*update.Password); err != nil {
			return nil, err
		}
	}

	user, err := s.users.Update(ctx, current.ID, func(u *User) error {
		if update.Username != nil {
			u.Username = *update.Username
		}
		if update.Password != nil {
			u.PasswordHash = hash
		}
		if update.Role != nil {
			u.Role = *update.Role
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to update user", zap.Error(err))
		return nil, err
	}

	logger.Info("user updated", zap.String("new_username", user.Username))
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	s.logger.Debug("listing users")

	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	return users, nil
}

func (s *Service) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}
