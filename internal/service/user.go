package service

import (
	"context" // Request scoped operations
	"errors"  // Error inspection
	"time"    // Lock TTL

	"places_api/internal/apperr" // Classified HTTP errors
	"places_api/internal/domain" // Importing domain models
	"places_api/internal/utils"  // Password hashing and locks

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// UserImage is stored on every new user until uploads exist
const UserImage = "https://randomuser.me/api/portraits/men/1.jpg"

const (
	msgUserExists    = "User exists already, please login instead."
	msgSignupFailed  = "Signing up failed, please try again later."
	signupLockTTL    = 10 * time.Second
	signupLockPrefix = "signup:"
)

// UserService handles signup, login and user listing
type UserService struct {
	DB     *gorm.DB
	Locker utils.Locker // Optional, serializes signups per email
}

// NewUserService creates a UserService, locker may be nil
func NewUserService(db *gorm.DB, locker utils.Locker) *UserService {
	return &UserService{DB: db, Locker: locker}
}

// List returns every user without the password column
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.DB.WithContext(ctx).Omit("password").Preload("Places").Find(&users).Error; err != nil {
		return nil, apperr.Internal("Fetching users failed, please try again later.", err)
	}
	return users, nil
}

// checkAgainstDummy is swapped in tests
var checkAgainstDummy = utils.CheckAgainstDummy

// Signup creates a user after checking that the email is free
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	if s.Locker != nil {
		token, ok, err := s.Locker.Acquire(ctx, signupLockPrefix+email, signupLockTTL)
		switch {
		case err != nil:
			// The unique index still rejects a duplicate
			logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Warn("Signup lock unavailable")
		case !ok:
			return nil, apperr.Unprocessable(msgUserExists)
		default:
			defer func() {
				if err := s.Locker.Release(context.WithoutCancel(ctx), signupLockPrefix+email, token); err != nil {
					logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Warn("Signup lock release failed")
				}
			}()
		}
	}

	var existing domain.User // Check if email is taken
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperr.Unprocessable(msgUserExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(msgSignupFailed, err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal("Could not create user, please try again.", err)
	}
	user := domain.User{
		Name:     name,      // Display name
		Email:    email,     // Unique email
		Image:    UserImage, // Placeholder image
		Password: hash,      // Hashed password
		Places:   []domain.Place{},
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Unprocessable(msgUserExists)
		}
		logrus.WithFields(logrus.Fields{
			"email": email,       // User email
			"error": err.Error(), // Error message
		}).Error("Signup failed")
		return nil, apperr.Internal(msgSignupFailed, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID, // New user ID
		"email":   email,   // User email
	}).Info("User signed up")
	return &user, nil
}

// Login verifies credentials, unknown email and wrong password fail the same way
func (s *UserService) Login(ctx context.Context, email, password string) error {
	var user domain.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			checkAgainstDummy(password) // Same bcrypt cost as a wrong password
			return apperr.Unauthorized(apperr.MsgBadCredentials)
		}
		return apperr.Internal("Logging in failed, please try again later.", err)
	}
	if !utils.CheckPassword(user.Password, password) {
		return apperr.Unauthorized(apperr.MsgBadCredentials)
	}
	return nil
}
