package service

import (
	"context"
	"errors"
	"strings"

	"event-ticketing/internal/auth"
	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/go-playground/validator/v10"
)

// 與 handler 的 binding 使用同一套 email 規則
var validate = validator.New()

type UserService interface {
	Register(ctx context.Context, params model.RegisterParams) (*model.User, error)
	// Authenticate 帳號不存在或密碼錯誤都回傳 ErrInvalidCredentials
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Profile(ctx context.Context, id int) (*model.Profile, error)
	List(ctx context.Context) ([]*model.User, error)
}

type UserServiceImpl struct {
	userRepo         repository.UserRepository
	bookingRepo      repository.BookingRepository
	hasher           auth.PasswordHasher
	allowAdminSignup bool
}

func NewUserService(
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	hasher auth.PasswordHasher,
	allowAdminSignup bool,
) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		bookingRepo:      bookingRepo,
		hasher:           hasher,
		allowAdminSignup: allowAdminSignup,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserServiceImpl) Register(ctx context.Context, params model.RegisterParams) (*model.User, error) {
	username := strings.TrimSpace(params.Username)
	email := normalizeEmail(params.Email)
	if username == "" || params.Password == "" {
		return nil, apperrors.ErrInvalidInput
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, apperrors.ErrInvalidInput
	}
	if params.IsAdmin && !s.allowAdminSignup {
		return nil, apperrors.ErrAdminSignupClosed
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Create(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      params.IsAdmin,
	})
}

func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserServiceImpl) Profile(ctx context.Context, id int) (*model.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		User:              user,
		ConfirmedBookings: make([]*model.Booking, 0),
		WaitingList:       make([]*model.Booking, 0),
	}
	user.BookingIDs = make([]int, 0, len(bookings))
	for _, b := range bookings {
		user.BookingIDs = append(user.BookingIDs, b.ID)
		switch b.Status {
		case model.BookingStatusConfirmed:
			profile.ConfirmedBookings = append(profile.ConfirmedBookings, b)
		case model.BookingStatusWaiting:
			profile.WaitingList = append(profile.WaitingList, b)
		}
	}

	return profile, nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}
