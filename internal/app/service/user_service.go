package service

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/common"
	"backoffice/internal/domain/model"
	"backoffice/internal/domain/repository"
)

// UserService covers the non-auth user reads and writes consumed by the
// profile endpoints.
type UserService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo}
}

type UserProfile struct {
	User model.User `json:"user"`
	Role model.Role `json:"role"`
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.Internal(fmt.Errorf("failed to find user: %w", err))
	}

	role, err := s.roleRepo.FindByID(ctx, user.Role)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrRoleNotFound
		}
		return nil, common.Internal(fmt.Errorf("failed to find role: %w", err))
	}

	return &UserProfile{User: *user, Role: *role}, nil
}

func (s *UserService) UpdatePhoto(ctx context.Context, userID string, photo *model.Photo) error {
	if err := s.userRepo.UpdatePhoto(ctx, userID, photo); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return common.Internal(fmt.Errorf("failed to update photo: %w", err))
	}
	return nil
}
