package service

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/common"
	"backoffice/internal/domain/model"
	"backoffice/internal/domain/repository"
)

// RoleService resolves roles and their permission sets.
type RoleService struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
}

func NewRoleService(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo, permRepo: permRepo}
}

func (s *RoleService) FindOneByID(ctx context.Context, id string) (*model.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	return role, nil
}

func (s *RoleService) FindPermissionsByIDs(ctx context.Context, ids []string) ([]model.Permission, error) {
	permissions, err := s.permRepo.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find permissions: %w", err)
	}
	return permissions, nil
}

// GetPermissionByGroup filters permissions down to the requested scope.
// Pure function, no side effects.
func GetPermissionByGroup(permissions []model.Permission, scope string) []model.Permission {
	var granted []model.Permission
	for _, p := range permissions {
		if p.Group == scope {
			granted = append(granted, p)
		}
	}
	return granted
}
