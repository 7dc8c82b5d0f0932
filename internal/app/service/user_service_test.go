package service

import (
	"context"
	"testing"

	"backoffice/internal/common"
	"backoffice/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	users := newFakeUserRepo()
	roles := newFakeRoleRepo()
	users.users["user-1"] = &model.User{ID: "user-1", Username: "alice", Role: "role-1"}
	roles.roles["role-1"] = &model.Role{ID: "role-1", Name: "administrator", IsActive: true}
	svc := NewUserService(users, roles)

	profile, err := svc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Username)
	assert.Equal(t, "administrator", profile.Role.Name)

	_, err = svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestUserService_GetProfile_MissingRole(t *testing.T) {
	users := newFakeUserRepo()
	users.users["user-1"] = &model.User{ID: "user-1", Username: "alice", Role: "gone"}
	svc := NewUserService(users, newFakeRoleRepo())

	_, err := svc.GetProfile(context.Background(), "user-1")
	assert.ErrorIs(t, err, common.ErrRoleNotFound)
}

func TestUserService_UpdatePhoto(t *testing.T) {
	users := newFakeUserRepo()
	users.users["user-1"] = &model.User{ID: "user-1", Username: "alice"}
	svc := NewUserService(users, newFakeRoleRepo())

	photo := &model.Photo{Filename: "me.png", Mime: "image/png", Size: 1024}
	require.NoError(t, svc.UpdatePhoto(context.Background(), "user-1", photo))
	assert.Equal(t, "me.png", users.users["user-1"].Photo.Filename)

	err := svc.UpdatePhoto(context.Background(), "missing", photo)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}
