package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/entity"
	"github.com/DHANUSH-web/commercial-catalog/repository"
	"github.com/DHANUSH-web/commercial-catalog/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration, login and user lookup.
type AuthService struct {
	store     repository.Store
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(store repository.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a new user. The password is bcrypt-hashed before it
// reaches any store. Duplicate username or email returns
// repository.ErrDuplicate.
func (s *AuthService) Register(ctx context.Context, username, email, password, name, photoURL string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		PhotoURL: strings.TrimSpace(photoURL),
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := s.store.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return s.store.FindUserByID(ctx, id)
}
