package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskboard/app/apperr"
	"taskboard/app/models"
	"taskboard/app/policy"
	"taskboard/app/repo"
)

type AuthService struct{ users *repo.UserRepository }

func NewAuthService(users *repo.UserRepository) *AuthService { return &AuthService{users: users} }

// Register creates an account. Role defaults to employee when omitted.
func (s *AuthService) Register(name, email, password, role string) (*models.User, error) {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("Email already used")
	}
	if role == "" {
		role = string(policy.RoleEmployee)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Name: name, Email: email, PasswordHash: string(hash), Role: role}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ValidateCredentials answers the same way for an unknown email and a wrong
// password so callers cannot tell which one failed.
func (s *AuthService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	return u, nil
}

// EnsureAdmin seeds the bootstrap admin account if the email is not taken.
func (s *AuthService) EnsureAdmin(name, email, password string) error {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Name: name, Email: email, PasswordHash: string(hash), Role: string(policy.RoleAdmin)})
}
