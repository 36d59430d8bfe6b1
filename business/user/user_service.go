package user

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"
	"time"

	"giveLocal/domain"
	"giveLocal/internal/repository/redis"
	"giveLocal/pkg/logger"
	"giveLocal/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByPhone(ctx context.Context, phone string) (domain.User, error)
	UpdateLastLocation(ctx context.Context, userID uint64, lat, lon float64) error
}

// SessionRepository contract interface
type SessionRepository interface {
	StoreSession(ctx context.Context, userID, token string, data redis.SessionData, ttl time.Duration) error
	ValidateSession(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	validate    *validator.Validate
}

func NewUserService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	validate *validator.Validate,
) *userService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		validate:    validate,
	}
}

var (
	nameRe    = regexp.MustCompile(`^[A-Za-z\s]+$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

func (s *userService) Signup(ctx context.Context, user *domain.User) (domain.User, error) {
	if len(user.Name) < 3 || len(user.Name) > 30 || !nameRe.MatchString(user.Name) {
		return domain.User{}, errors.New("name must be 3-30 alphabetic characters")
	}

	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if !phoneRe.MatchString(user.Phone) {
		return domain.User{}, errors.New("phone number must be exactly 10 digits")
	}

	if len(user.Password) < 8 ||
		!upperRe.MatchString(user.Password) ||
		!lowerRe.MatchString(user.Password) ||
		!digitRe.MatchString(user.Password) ||
		!specialRe.MatchString(user.Password) {
		return domain.User{}, errors.New("password must be at least 8 characters with 1 uppercase, 1 lowercase, 1 number and 1 special character")
	}

	// Check duplicates on both unique contact fields
	if existing, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil && existing.ID > 0 {
		return domain.User{}, errors.New("email or phone number already exists")
	}
	if existing, err := s.userRepo.FindByPhone(ctx, user.Phone); err == nil && existing.ID > 0 {
		return domain.User{}, errors.New("email or phone number already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Password:     passwordHash,
		IgnoredItems: []byte("[]"),
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, errors.New("invalid email or password")
	}

	if !utils.CheckPassword(password, user.Password) {
		return "", domain.User{}, errors.New("invalid email or password")
	}

	userIDStr := strconv.FormatUint(user.ID, 10)

	token, expiresAt, err := utils.GenerateJWT(userIDStr)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	sessionData := redis.SessionData{
		UserID:    userIDStr,
		Token:     token,
		IssuedAt:  time.Now(),
		ExpiresAt: expiresAt,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := s.sessionRepo.StoreSession(ctx, userIDStr, token, sessionData, time.Until(expiresAt)); err != nil {
		logger.Error("Failed to store session", err)
		return "", domain.User{}, errors.New("failed to store session")
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint64, token string) error {
	return s.sessionRepo.DeleteSession(ctx, strconv.FormatUint(userID, 10), token)
}

func (s *userService) ValidateSession(ctx context.Context, token string) (string, error) {
	return s.sessionRepo.ValidateSession(ctx, token)
}

func (s *userService) GetUserByID(ctx context.Context, id uint64) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *userService) UpdateLocation(ctx context.Context, userID uint64, lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return errors.New("latitude and longitude must be finite numbers")
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return errors.New("latitude and longitude out of range")
	}

	return s.userRepo.UpdateLastLocation(ctx, userID, lat, lon)
}
