package services

import (
	"classifieds_backend/internal/dto"
	"classifieds_backend/internal/email"
	"classifieds_backend/internal/logger"
	"classifieds_backend/internal/models"
	"classifieds_backend/internal/repositories"
	"classifieds_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Register creates a user and auto-verifies it. The verification mail is
// still sent so the flow can become a real confirmation round trip later;
// until then the account is usable immediately.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if !models.Location(req.Location).Valid() {
		return nil, apperrors.ErrInvalidLocation
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	verificationToken := generateVerificationToken()

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hashed,
		Name:              req.Name,
		Age:               req.Age,
		Location:          models.Location(req.Location),
		Verified:          false,
		VerificationToken: verificationToken,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken)

	// Auto-verify: flips verified and clears the token
	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RegisterResponse{
		Message:  "Registration successful",
		UserID:   user.ID,
		Verified: true,
	}, nil
}

// Login checks credentials and returns a bare identity payload.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !checkPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.Verified {
		return nil, apperrors.ErrUserNotVerified
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
	}, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendVerification(to, token); err != nil {
			logger.WithError(err).Warn("failed to send verification email", "email", to)
		}
	}()
}
