package service

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSettingService(repo *fakeSettingRepo) *SettingService {
	return NewSettingService(repo, nil, time.Minute, zap.NewNop())
}

func TestSettingService_DefaultsWhenMissing(t *testing.T) {
	svc := newTestSettingService(newFakeSettingRepo())

	enabled, err := svc.GetPasswordAttempt(context.Background())
	require.NoError(t, err)
	assert.True(t, enabled)

	max, err := svc.GetMaxPasswordAttempt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, max)
}

func TestSettingService_ReadsStoredValues(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.set(model.SettingNamePasswordAttempt, "boolean", "false")
	repo.set(model.SettingNameMaxPasswordAttempt, "number", "8")
	svc := newTestSettingService(repo)

	enabled, err := svc.GetPasswordAttempt(context.Background())
	require.NoError(t, err)
	assert.False(t, enabled)

	max, err := svc.GetMaxPasswordAttempt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, max)
}

func TestSettingService_RejectsUnparsableValues(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.set(model.SettingNamePasswordAttempt, "boolean", "yes please")
	repo.set(model.SettingNameMaxPasswordAttempt, "number", "many")
	svc := newTestSettingService(repo)

	_, err := svc.GetPasswordAttempt(context.Background())
	assert.Error(t, err)

	_, err = svc.GetMaxPasswordAttempt(context.Background())
	assert.Error(t, err)
}
