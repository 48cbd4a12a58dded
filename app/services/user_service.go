package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskboard/app/apperr"
	"taskboard/app/dto"
	"taskboard/app/models"
	"taskboard/app/repo"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func (s *UserService) ListAll() ([]models.User, error) { return s.users.ListAll() }

func (s *UserService) Create(in dto.CreateUserRequest) (*models.User, error) {
	count, err := s.users.CountByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("Email already used")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Name: in.Name, Email: in.Email, PasswordHash: string(hash), Role: in.Role}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update applies only the fields present in the request. An empty password
// string is ignored rather than hashed.
func (s *UserService) Update(id uint, in dto.UpdateUserRequest) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Remove deletes the user row. Tasks assigned to the user and projects owned
// by them keep their references.
func (s *UserService) Remove(id uint) error {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	return s.users.Delete(u)
}
