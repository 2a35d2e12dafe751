package service

import (
	"go-mini-erp/internal/model"
	"go-mini-erp/internal/repository"
	"go-mini-erp/pkg/jwt"
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	CreateUser(username, password, role string) (*model.User, error)
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login verifies credentials and issues a bearer token. Unknown username and
// wrong password collapse into the same error so callers cannot enumerate
// accounts.
func (s *authService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) CreateUser(username, password, role string) (*model.User, error) {
	if existing, _ := s.userRepo.FindByUsername(username); existing != nil {
		return nil, ErrUserExists
	}

	if role == "" {
		role = model.RoleViewer
	}

	user := &model.User{
		Username: username,
		Role:     role,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
