package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userrepo "github.com/aartrack/aar-backend/internal/data/repos/user"
	types "github.com/aartrack/aar-backend/internal/domain"
	"github.com/aartrack/aar-backend/internal/pkg/apperr"
	"github.com/aartrack/aar-backend/internal/pkg/ctxutil"
	"github.com/aartrack/aar-backend/internal/pkg/logger"
)

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*types.User, string, error)
	Login(ctx context.Context, in LoginInput) (*types.User, string, error)
	// Authenticate validates a bearer token and resolves the identity it
	// carries. Stateless: no store lookup.
	Authenticate(tokenString string) (*ctxutil.RequestData, error)
	GetMe(ctx context.Context) (*types.UserPublic, error)
}

type authClaims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

type authService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  userrepo.UserRepo
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, baseLog *logger.Logger, userRepo userrepo.UserRepo, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		db:        db,
		log:       baseLog.With("service", "AuthService"),
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*types.User, string, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	fields := map[string]string{}
	if in.Email == "" {
		fields["email"] = "email is required"
	} else if !strings.Contains(in.Email, "@") {
		fields["email"] = "email is not valid"
	}
	if len(in.Password) < 6 {
		fields["password"] = "password must be at least 6 characters"
	}
	if in.Name == "" {
		fields["name"] = "name is required"
	}
	if len(fields) > 0 {
		return nil, "", apperr.Validation(fields)
	}

	// Exact, case-sensitive match against the stored email.
	exists, err := s.userRepo.EmailExists(ctx, nil, in.Email)
	if err != nil {
		return nil, "", apperr.Internal(fmt.Errorf("check email: %w", err))
	}
	if exists {
		return nil, "", apperr.Conflict("email_taken", errors.New("email already registered"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := &types.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.Create(ctx, tx, user)
		return err
	}); err != nil {
		s.log.Error("Register failed", "error", err)
		return nil, "", apperr.Internal(fmt.Errorf("create user: %w", err))
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", apperr.Internal(fmt.Errorf("issue token: %w", err))
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*types.User, string, error) {
	// The same error for unknown email and wrong password, so callers
	// cannot probe which one failed.
	invalid := apperr.Unauthorized("invalid_credentials", errors.New("invalid email or password"))

	user, err := s.userRepo.GetByEmail(ctx, nil, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, "", apperr.Internal(fmt.Errorf("load user: %w", err))
	}
	if user == nil {
		return nil, "", invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", invalid
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", apperr.Internal(fmt.Errorf("issue token: %w", err))
	}
	return user, token, nil
}

func (s *authService) Authenticate(tokenString string) (*ctxutil.RequestData, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("invalid_token", errors.New("missing or invalid token"))
	}
	if claims.UserID == 0 {
		return nil, apperr.Unauthorized("invalid_token", errors.New("token carries no identity"))
	}
	return &ctxutil.RequestData{
		UserID:    claims.UserID,
		UserEmail: claims.Email,
		UserName:  claims.Name,
	}, nil
}

func (s *authService) GetMe(ctx context.Context) (*types.UserPublic, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == 0 {
		return nil, apperr.Unauthorized("unauthorized", errors.New("no identity in context"))
	}
	return &types.UserPublic{ID: rd.UserID, Email: rd.UserEmail, Name: rd.UserName}, nil
}

func (s *authService) issueToken(user *types.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
