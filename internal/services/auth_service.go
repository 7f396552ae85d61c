package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	domainerrors "github.com/gmagencia/gmfaces-backend/internal/domain/errors"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/domain/repositories"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
)

// AuthService autentica usuários administrativos e emite tokens de sessão
// assinados (HS256) carregados pelo cookie HTTP-only.
type AuthService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	logger ports.Logger,
	secret string,
	maxAgeDays int,
) *AuthService {
	if maxAgeDays <= 0 {
		maxAgeDays = 7
	}
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
		secret:   []byte(secret),
		tokenTTL: time.Duration(maxAgeDays) * 24 * time.Hour,
	}
}

// TokenTTL retorna a validade do token, usada como maxAge do cookie
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Login valida credenciais e emite o token de sessão. Email desconhecido e
// senha errada produzem o mesmo erro genérico (sem enumeração de contas).
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("admin login", "user_id", user.ID)
	return user, token, nil
}

// Authenticate valida o token do cookie e carrega o usuário da sessão
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

// EnsureAdminUser cria o usuário bootstrap quando a tabela está vazia
func (s *AuthService) EnsureAdminUser(ctx context.Context, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	validEmail, err := valueobjects.NewEmail(email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entities.User{
		Email:        validEmail,
		Name:         name,
		PasswordHash: string(hash),
		Role:         entities.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("bootstrap admin user created", "email", validEmail.String())
	return nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
