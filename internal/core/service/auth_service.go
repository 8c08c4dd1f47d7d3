package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/liderlab/assessment-system/internal/core/domain"
	"github.com/liderlab/assessment-system/internal/core/ports"
)

// SeedUsers holds the two default accounts created on an empty user store.
type SeedUsers struct {
	MasterEmail     string
	StandardEmail   string
	DefaultPassword string
}

// AuthService implements credential verification, user creation, first-run
// seeding and JWT issuing for the JSON API.
type AuthService struct {
	repo      ports.UserRepository
	seed      SeedUsers
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, seed SeedUsers, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, seed: seed, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) CreateUser(ctx context.Context, email, password, role string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleStandard
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("user created")
	return user, nil
}

func (s *AuthService) EnsureSeedUsers(ctx context.Context) error {
	users, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	if _, err := s.CreateUser(ctx, s.seed.MasterEmail, s.seed.DefaultPassword, domain.RoleMaster); err != nil {
		return err
	}
	if _, err := s.CreateUser(ctx, s.seed.StandardEmail, s.seed.DefaultPassword, domain.RoleStandard); err != nil {
		return err
	}

	s.log.Info().
		Str("master_email", s.seed.MasterEmail).
		Str("standard_email", s.seed.StandardEmail).
		Msg("seeded default users")
	return nil
}

func (s *AuthService) IssueToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// findByEmail returns the first user (in load order) whose email matches
// case-insensitively. Duplicates are possible; first match wins.
func (s *AuthService) findByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	for i := range users {
		if strings.ToLower(users[i].Email) == email {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}
