package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saraswaticlasses/institute-api/internal/models"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
)

type sessionStore interface {
	Get(ctx context.Context) (*models.Session, error)
	Set(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}

type studentDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.StudentUser, error)
}

// AuthConfig holds the credentials and token parameters the gate runs on.
// The admin identity is configuration, never a stored record.
type AuthConfig struct {
	AdminEmail    string
	AdminPassword string
	TokenSecret   string
	TokenExpiry   time.Duration
	Issuer        string
}

// AuthService is the login gate. One entry point serves both roles: the
// configured admin pair wins first, then the roster is consulted by email
// and the password matched exactly against freshly loaded records.
type AuthService struct {
	students  studentDirectory
	sessions  sessionStore
	config    AuthConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(students studentDirectory, sessions sessionStore, config AuthConfig, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{students: students, sessions: sessions, config: config, validator: validate, logger: logger}
}

// Login resolves a credential pair to a role. Admin is checked before the
// roster, so the admin can always sign in even with zero students on file.
// A failed login changes nothing.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	if req.Email == s.config.AdminEmail && req.Password == s.config.AdminPassword {
		return s.establish(ctx, models.RoleAdmin, nil)
	}

	student, err := s.students.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	if student != nil && student.Password == req.Password {
		return s.establish(ctx, models.RoleStudent, student)
	}

	s.logger.Warn("login rejected", zap.String("email", req.Email))
	return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
}

// Logout drops the persisted session. Calling it signed out is fine.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session")
	}
	return nil
}

// Session returns the persisted session, nil when signed out.
func (s *AuthService) Session(ctx context.Context) (*models.Session, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	return session, nil
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

func (s *AuthService) establish(ctx context.Context, role models.Role, student *models.StudentUser) (*models.LoginResponse, error) {
	session := models.Session{Role: role, Student: student}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	token, expiresIn, err := s.generateAccessToken(role, student)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	s.logger.Info("login accepted", zap.String("role", string(role)))
	return &models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		Role:        role,
		Student:     student,
		IssuedAt:    time.Now().UTC(),
	}, nil
}

func (s *AuthService) generateAccessToken(role models.Role, student *models.StudentUser) (string, int64, error) {
	now := time.Now().UTC()
	claims := models.JWTClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
		},
	}
	if student != nil {
		claims.StudentID = student.ID
		claims.Email = student.Email
		claims.Subject = student.ID
	} else {
		claims.Email = s.config.AdminEmail
		claims.Subject = "admin"
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.config.TokenExpiry.Seconds()), nil
}
