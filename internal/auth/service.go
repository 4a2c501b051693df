package auth

import (
	"errors"
	"fmt"
	"time"

	"rental-portal-backend/internal/database/models"
	apperrors "rental-portal-backend/internal/errors"
	"rental-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService provides authentication functionality
type AuthService struct {
	config    *AuthConfig
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"a8098c1a-f86e-11da-bd1a-00112444be1e"`
	Name                 string `json:"name" example:"John Doe"`
	Email                string `json:"email" example:"john.doe@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// RegisterRequest represents the request for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the request for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents the response containing an issued token
type TokenResponse struct {
	AccessToken string       `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64        `json:"expiresIn" example:"3600"`
	User        *models.User `json:"user"`
}

// LogoutResponse represents the response from the logout endpoint
type LogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:    config,
		userRepo:  userRepo,
		validator: validator.New(),
	}, nil
}

// Register creates a new portal account and returns a token for it
func (s *AuthService) Register(req *RegisterRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

// Login verifies credentials and returns a token for the user
func (s *AuthService) Login(req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GetUser returns the account for validated claims
func (s *AuthService) GetUser(claims *AuthClaims) (*models.User, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// Logout handles user logout (stateless JWT tokens don't require server-side logout)
func (s *AuthService) Logout() error {
	// For JWT tokens, logout is handled client-side by removing the token
	return nil
}

func (s *AuthService) issueToken(user *models.User) (*TokenResponse, error) {
	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
		User:        user,
	}, nil
}
