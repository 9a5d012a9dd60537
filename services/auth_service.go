package services

import (
	"context"
	"errors"
	"time"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/repository"
	"github.com/Keshavsaini22/slooze-assignment/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService จัดการ login และออก JWT
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

var errInvalidCredentials = apperr.Unauthorized("invalid credentials")

// Login ตรวจสอบ user + สร้าง JWT
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return "", nil, errInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	// เทียบรหัสผ่าน
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errInvalidCredentials
	}

	// ออก token
	token, err := utils.GenerateToken(user.ID, user.Role, user.Country, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
