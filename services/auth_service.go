package services

import (
	"errors"
	"strings"
	"time"

	"github.com/eddietapia/reservations/entity"
	"github.com/eddietapia/reservations/pkg/apperr"
	"github.com/eddietapia/reservations/repository"
	"github.com/eddietapia/reservations/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles eater registration, login and profile access.
type AuthService struct {
	eaterRepo *repository.EaterRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.EaterRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		eaterRepo: repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a new eater account; duplicate emails are rejected.
func (s *AuthService) Register(name, email, password string) (*entity.Eater, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, apperr.New(apperr.Validation, "name, email and password are required")
	}

	count, err := s.eaterRepo.CountByEmail(email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "checking email", err)
	}
	if count > 0 {
		return nil, apperr.New(apperr.Validation, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "hashing password", err)
	}

	eater := &entity.Eater{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     "eater",
		IsActive: true,
	}
	if err := s.eaterRepo.Create(eater); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "creating eater", err)
	}
	return eater, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.Eater, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	eater, err := s.eaterRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.New(apperr.Validation, "invalid credentials")
		}
		return "", nil, apperr.Wrap(apperr.Storage, "loading eater", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(eater.Password), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.Validation, "invalid credentials")
	}

	token, err := utils.GenerateToken(eater.ID, eater.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.Storage, "generating token", err)
	}
	return token, eater, nil
}

func (s *AuthService) GetProfile(eaterID uint) (*entity.Eater, error) {
	eater, err := s.eaterRepo.FindByID(eaterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "eater %d not found", eaterID)
		}
		return nil, apperr.Wrap(apperr.Storage, "loading eater", err)
	}
	return eater, nil
}
