package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SHOEB091/code-IDE/internal/store"
	"github.com/SHOEB091/code-IDE/types"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Tokens are stateless and unscoped in time: there is no revocation
// list and no expiry, matching the client contract.
const bcryptCost = 12

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	UpdateProfileImage(ctx context.Context, id int, objectKey string) error
}

// UserService is the identity service: it registers accounts, verifies
// credentials, and issues and resolves bearer tokens. The signing
// secret is injected once at construction; nothing here reads ambient
// process state.
type UserService struct {
	repo   UserRepository
	secret []byte
}

func NewUserService(repo UserRepository, jwtSecret string) *UserService {
	return &UserService{repo: repo, secret: []byte(jwtSecret)}
}

// RegisterParams carries the profile fields accepted at sign-up.
type RegisterParams struct {
	Email      string
	Password   string
	FullName   string
	Phone      string
	Username   string
	Occupation string
}

// Register creates an account with a bcrypt-hashed password. The
// plaintext password is never persisted.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (types.User, error) {
	if _, err := s.repo.GetByEmail(ctx, params.Email); err == nil {
		return types.User{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, err
	}

	if params.Username != "" {
		if _, err := s.repo.GetByUsername(ctx, params.Username); err == nil {
			return types.User{}, ErrDuplicateUsername
		} else if !errors.Is(err, store.ErrNotFound) {
			return types.User{}, err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, types.User{
		Email:        params.Email,
		PasswordHash: string(hashed),
		FullName:     params.FullName,
		Phone:        params.Phone,
		Username:     params.Username,
		Occupation:   params.Occupation,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return types.User{}, ErrDuplicateEmail
		}
		return types.User{}, err
	}
	return user, nil
}

// Authenticate verifies the email/password pair and issues a signed
// token binding the user id. A missing account surfaces as
// store.ErrNotFound; a failed comparison as ErrInvalidCredential.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredential
	}

	return s.issueToken(user.ID)
}

// Resolve maps a bearer token back to the user it was issued for. Any
// verification failure, including a token for a deleted account, is
// reported as ErrInvalidToken.
func (s *UserService) Resolve(ctx context.Context, token string) (types.User, error) {
	userID, err := s.parseToken(token)
	if err != nil {
		return types.User{}, ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidToken
		}
		return types.User{}, err
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

// SetProfileImage records the object key of the user's avatar.
func (s *UserService) SetProfileImage(ctx context.Context, userID int, objectKey string) error {
	return s.repo.UpdateProfileImage(ctx, userID, objectKey)
}

func (s *UserService) issueToken(userID int) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  strconv.Itoa(userID),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *UserService) parseToken(tokenString string) (int, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}
	userID, err := strconv.Atoi(strings.TrimSpace(claims.Subject))
	if err != nil || userID < 1 {
		return 0, errors.New("invalid subject")
	}
	return userID, nil
}
