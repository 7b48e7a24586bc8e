package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login and account-level operations.
type AuthService struct {
	Users     *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, jwtSecret: secret, jwtTTL: ttl}
}

// Login accepts username or email.
func (s *AuthService) Login(login, password string) (string, *entity.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	user, err := s.Users.FindByLogin(login)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetAccount(userID uint) (*entity.User, error) {
	return s.Users.FindByID(userID)
}

// DeleteAccount removes the account; the owning profile, cart lines and
// favorites go with it through FK cascades.
func (s *AuthService) DeleteAccount(userID uint) error {
	return s.Users.Delete(userID)
}
