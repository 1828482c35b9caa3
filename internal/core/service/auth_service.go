package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/conexa/starwars-api/internal/core/domain"
	"github.com/conexa/starwars-api/internal/core/ports"
)

const bcryptCost = 10

// BootstrapAdmin is the well-known credential pair seeded by EnsureAdmin.
// Operational bootstrap only: rotate the password after first deploy.
type BootstrapAdmin struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements registration, login, and the admin bootstrap seed.
type AuthService struct {
	repo      ports.UserRepository
	tokens    ports.TokenService
	bootstrap BootstrapAdmin
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, bootstrap BootstrapAdmin, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, bootstrap: bootstrap, log: log}
}

// Register creates a new USER account. The role is never caller-supplied;
// registration cannot create admins.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*ports.RegisterResult, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// The unique email index may fire after the pre-check when two
		// registrations race; same outcome as the pre-check.
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")

	return &ports.RegisterResult{
		Message: "User created successfully",
		UserID:  created.ID,
	}, nil
}

// Login authenticates by email and password and issues an access token.
// A missing user and a wrong password return the same error; the bcrypt
// comparison runs either way to keep response timing uniform.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	storedHash := ""
	if user != nil {
		storedHash = user.PasswordHash
	}

	match := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
	if user == nil || !match {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.Claims{
		Subject: user.ID,
		Email:   user.Email,
		Role:    user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{AccessToken: token}, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// EnsureAdmin creates the bootstrap admin account when no ADMIN exists.
// Idempotent: a second call (or a concurrent process) finds the admin and
// does nothing; a create race is absorbed by the unique email index.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	_, err := s.repo.FindFirstByRole(ctx, domain.RoleAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.bootstrap.Password), bcryptCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Name:         s.bootstrap.Name,
		Email:        s.bootstrap.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	s.log.Info().Str("email", s.bootstrap.Email).Msg("bootstrap admin created, rotate the default password")
	return nil
}
