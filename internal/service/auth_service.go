package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"go-movie-watchlist/internal/model"
	"go-movie-watchlist/pkg/apierror"
)

type authUserStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, username string, passwordHash string, roleID model.Role) (model.User, error)
}

type AuthService struct {
	users     authUserStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(jwtSecret string, tokenTTL time.Duration, users authUserStore) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Register creates a client-role account. Role escalation is only possible
// through the admin user endpoints.
func (s *AuthService) Register(ctx context.Context, username string, password string) (model.PublicUser, error) {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return model.PublicUser{}, err
	}
	if exists {
		return model.PublicUser{}, apierror.Conflict("User already exists.")
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return model.PublicUser{}, err
	}

	user, err := s.users.Create(ctx, username, hash, model.RoleClient)
	if err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

// Login verifies credentials and issues a session token. An unknown
// username is reported as not found, a wrong password as unauthorized.
func (s *AuthService) Login(ctx context.Context, username string, password string) (model.PublicUser, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return model.PublicUser{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return model.PublicUser{}, "", apierror.Unauthorized("Invalid credentials.")
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return model.PublicUser{}, "", err
	}

	return user.Public(), token, nil
}

// CheckAuth re-reads the token subject's user row so role changes made
// after the token was issued are reflected.
func (s *AuthService) CheckAuth(ctx context.Context, userID int64) (model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// IssueToken signs an HS256 token carrying the user's identity, expiring
// after the configured TTL.
func (s *AuthService) IssueToken(user model.User) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role_id":  int(user.RoleID),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})

	return token.SignedString(s.jwtSecret)
}

// ValidateToken verifies signature and expiry. Every failure mode collapses
// into the same unauthorized error; callers cannot distinguish a tampered
// token from an expired one.
func (s *AuthService) ValidateToken(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apierror.Unauthorized("Not authorized.")
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Unauthorized("Not authorized.")
	}

	sub, ok := claimsMap["sub"].(float64)
	if !ok || sub <= 0 {
		return nil, apierror.Unauthorized("Not authorized.")
	}

	claims := &model.AuthClaims{UserID: int64(sub)}
	claims.Username, _ = claimsMap["username"].(string)
	if roleID, ok := claimsMap["role_id"].(float64); ok {
		claims.RoleID = model.Role(int(roleID))
	}

	return claims, nil
}
