package service

import (
	"context"
	"testing"

	"backoffice/internal/common"
	"backoffice/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleService_FindOneByID(t *testing.T) {
	roles := newFakeRoleRepo()
	roles.roles["role-1"] = &model.Role{ID: "role-1", Name: "administrator", IsActive: true}
	svc := NewRoleService(roles, &fakePermRepo{})

	role, err := svc.FindOneByID(context.Background(), "role-1")
	require.NoError(t, err)
	assert.Equal(t, "administrator", role.Name)

	_, err = svc.FindOneByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrRoleNotFound)
}

func TestGetPermissionByGroup(t *testing.T) {
	permissions := []model.Permission{
		{Code: "USER_READ", Group: model.PermissionGroupUser},
		{Code: "USER_DELETE", Group: model.PermissionGroupUser},
		{Code: "ROLE_READ", Group: model.PermissionGroupRole},
		{Code: "API_KEY_READ", Group: model.PermissionGroupAPIKey},
	}

	tests := []struct {
		name  string
		scope string
		want  []string
	}{
		{"user scope", model.PermissionGroupUser, []string{"USER_READ", "USER_DELETE"}},
		{"role scope", model.PermissionGroupRole, []string{"ROLE_READ"}},
		{"no match", model.PermissionGroupSetting, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			granted := GetPermissionByGroup(permissions, tt.scope)

			var codes []string
			for _, p := range granted {
				codes = append(codes, p.Code)
			}
			assert.Equal(t, tt.want, codes)
		})
	}
}

func TestGetPermissionByGroup_EmptyInput(t *testing.T) {
	assert.Empty(t, GetPermissionByGroup(nil, model.PermissionGroupUser))
}
