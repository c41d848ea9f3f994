package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/config"
	"github.com/Vicky-coder616/dealdish-backend/internal/model"
	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/jwt"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/pricing"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/validate"
	"github.com/Vicky-coder616/dealdish-backend/internal/repository"
)

var (
	ErrInvalidEmail       = errors.New("email format is invalid")
	ErrInvalidMobile      = errors.New("mobile number must be a valid Australian mobile")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrDuplicateMobile    = errors.New("mobile number is already registered")
	ErrInvalidCredentials = errors.New("no account for that email")
	ErrNoSubscription     = errors.New("user has no subscription")
)

type AuthService struct {
	userRepo *repository.UserRepository
	subRepo  *repository.SubscriptionRepository
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, subRepo *repository.SubscriptionRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		subRepo:  subRepo,
		cfg:      cfg,
	}
}

// Register creates a user account. Customers start a 30-day trial and get
// a subscription record in the same transaction; restaurant accounts get
// neither.
func (s *AuthService) Register(req *dto.RegisterRequest) (*model.User, error) {
	if !validate.Email(req.Email) {
		return nil, ErrInvalidEmail
	}
	if !validate.AUMobile(req.MobileNumber) {
		return nil, ErrInvalidMobile
	}

	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	exists, err = s.userRepo.ExistsByMobile(req.MobileNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateMobile
	}

	now := time.Now().UTC()
	user := &model.User{
		Email:          req.Email,
		Name:           req.Name,
		MobileNumber:   req.MobileNumber,
		UserType:       req.UserType,
		CommissionTier: pricing.TierTrial,
	}

	if req.UserType == model.UserTypeCustomer {
		trialEnd := now.Add(pricing.TrialPeriod)
		user.SubscriptionStatus = model.SubscriptionStatusTrial
		user.TrialEndDate = &trialEnd

		sub := &model.Subscription{
			Status:          model.SubscriptionStatusTrial,
			TrialEndDate:    &trialEnd,
			NextBillingDate: &trialEnd,
		}
		if err := s.userRepo.CreateWithSubscription(user, sub); err != nil {
			return nil, err
		}
		return user, nil
	}

	user.SubscriptionStatus = model.SubscriptionStatusActive
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login looks the user up by email, re-evaluates trial expiry, and issues
// a session token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// downgrade a lapsed trial at login time
	if user.SubscriptionStatus == model.SubscriptionStatusTrial &&
		!pricing.IsTrialActive(time.Now().UTC(), user.TrialEndDate) {
		user.SubscriptionStatus = model.SubscriptionStatusExpired
		if err := s.userRepo.UpdateFields(user.ID, map[string]interface{}{
			"subscription_status": model.SubscriptionStatusExpired,
		}); err != nil {
			return nil, err
		}
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// GetSubscription returns the caller's subscription record. Restaurant
// accounts have none.
func (s *AuthService) GetSubscription(userID int64) (*model.Subscription, error) {
	sub, err := s.subRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSubscription
		}
		return nil, err
	}
	return sub, nil
}
