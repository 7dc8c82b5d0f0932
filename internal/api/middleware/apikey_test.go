package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/common"
	"backoffice/internal/domain/model"
	"backoffice/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPIKeyRepo struct {
	keys map[string]*model.APIKey
}

func (f *fakeAPIKeyRepo) Create(_ context.Context, apiKey *model.APIKey) error {
	f.keys[apiKey.Key] = apiKey
	return nil
}

func (f *fakeAPIKeyRepo) FindByKey(_ context.Context, key string) (*model.APIKey, error) {
	apiKey, ok := f.keys[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return apiKey, nil
}

func timePtr(t time.Time) *time.Time { return &t }

func TestAPIKeyGuard(t *testing.T) {
	repo := &fakeAPIKeyRepo{keys: map[string]*model.APIKey{
		"good-key": {
			Key:      "good-key",
			Hash:     HashAPIKey("good-key", "good-secret"),
			IsActive: true,
		},
		"inactive-key": {
			Key:      "inactive-key",
			Hash:     HashAPIKey("inactive-key", "secret"),
			IsActive: false,
		},
		"future-key": {
			Key:       "future-key",
			Hash:      HashAPIKey("future-key", "secret"),
			IsActive:  true,
			StartDate: timePtr(time.Now().Add(time.Hour)),
		},
		"expired-key": {
			Key:      "expired-key",
			Hash:     HashAPIKey("expired-key", "secret"),
			IsActive: true,
			EndDate:  timePtr(time.Now().Add(-time.Hour)),
		},
	}}

	guard := APIKeyGuard(repo, i18n.NewCatalog("en"), "en")
	handler := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   int
	}{
		{"valid key", "good-key:good-secret", http.StatusOK, 0},
		{"missing header", "", http.StatusUnauthorized, common.CodeAPIKeyRequired},
		{"malformed header", "no-separator", http.StatusUnauthorized, common.CodeAPIKeyMalformed},
		{"empty secret", "good-key:", http.StatusUnauthorized, common.CodeAPIKeyMalformed},
		{"unknown key", "nope:secret", http.StatusUnauthorized, common.CodeAPIKeyNotFound},
		{"inactive key", "inactive-key:secret", http.StatusUnauthorized, common.CodeAPIKeyInactive},
		{"not yet active", "future-key:secret", http.StatusUnauthorized, common.CodeAPIKeyNotYetActive},
		{"expired", "expired-key:secret", http.StatusUnauthorized, common.CodeAPIKeyExpired},
		{"wrong secret", "good-key:bad-secret", http.StatusUnauthorized, common.CodeAPIKeyNotMatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("x-api-key", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != 0 {
				var body common.Envelope
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Metadata.StatusCode)
			}
		})
	}
}

func TestHashAPIKey_Deterministic(t *testing.T) {
	assert.Equal(t, HashAPIKey("key", "secret"), HashAPIKey("key", "secret"))
	assert.NotEqual(t, HashAPIKey("key", "secret"), HashAPIKey("key", "other"))
	assert.Len(t, HashAPIKey("key", "secret"), 64)
}

func TestRequestLanguage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "en", RequestLanguage(req, "en"))

	req.Header.Set("x-custom-lang", "id")
	assert.Equal(t, "id", RequestLanguage(req, "en"))
}
