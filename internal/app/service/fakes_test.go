package service

import (
	"context"
	"time"

	"backoffice/internal/common"
	"backoffice/internal/domain/model"
)

// In-memory repository fakes. Reads return copies so services observe
// mutations only through the repository methods, like a real store.

type fakeUserRepo struct {
	users    map[string]*model.User
	incErr   error
	resetErr error

	increments int
	resets     int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) IncreasePasswordAttempt(_ context.Context, id string) error {
	if f.incErr != nil {
		return f.incErr
	}
	user, ok := f.users[id]
	if !ok {
		return common.ErrNotFound
	}
	user.PasswordAttempt++
	f.increments++
	return nil
}

func (f *fakeUserRepo) ResetPasswordAttempt(_ context.Context, id string) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	user, ok := f.users[id]
	if !ok {
		return common.ErrNotFound
	}
	user.PasswordAttempt = 0
	f.resets++
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string, created, expired time.Time) error {
	user, ok := f.users[id]
	if !ok {
		return common.ErrNotFound
	}
	user.Password = hash
	user.PasswordCreated = created
	user.PasswordExpired = expired
	return nil
}

func (f *fakeUserRepo) UpdatePhoto(_ context.Context, id string, photo *model.Photo) error {
	user, ok := f.users[id]
	if !ok {
		return common.ErrNotFound
	}
	user.Photo = photo
	return nil
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeRoleRepo struct {
	roles map[string]*model.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[string]*model.Role{}}
}

func (f *fakeRoleRepo) Create(_ context.Context, role *model.Role) error {
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) FindByID(_ context.Context, id string) (*model.Role, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *role
	return &copied, nil
}

type fakePermRepo struct {
	permissions []model.Permission
}

func (f *fakePermRepo) Create(_ context.Context, permission *model.Permission) error {
	f.permissions = append(f.permissions, *permission)
	return nil
}

func (f *fakePermRepo) FindAllByIDs(_ context.Context, ids []string) ([]model.Permission, error) {
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	var found []model.Permission
	for _, p := range f.permissions {
		if wanted[p.ID] {
			found = append(found, p)
		}
	}
	return found, nil
}

type fakeSettingRepo struct {
	settings map[string]*model.Setting
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: map[string]*model.Setting{}}
}

func (f *fakeSettingRepo) FindByName(_ context.Context, name string) (*model.Setting, error) {
	setting, ok := f.settings[name]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *setting
	return &copied, nil
}

func (f *fakeSettingRepo) Upsert(_ context.Context, setting *model.Setting) error {
	f.settings[setting.Name] = setting
	return nil
}

func (f *fakeSettingRepo) set(name, settingType, value string) {
	f.settings[name] = &model.Setting{ID: name, Name: name, Type: settingType, Value: value}
}
