package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/common"
	"backoffice/internal/domain/repository"
	"backoffice/internal/i18n"
)

const apiKeyHeader = "x-api-key"

// HashAPIKey digests key:secret the way stored api-key hashes are built.
func HashAPIKey(key, secret string) string {
	sum := sha256.Sum256([]byte(key + ":" + secret))
	return hex.EncodeToString(sum[:])
}

// APIKeyGuard authenticates callers by the x-api-key header, formatted as
// "key:secret". The stored record must be active, inside its validity
// window, and match the sha256 digest.
func APIKeyGuard(repo repository.APIKeyRepository, msgs *i18n.Catalog, defaultLang string) func(http.Handler) http.Handler {
	reject := func(w http.ResponseWriter, r *http.Request, code int, messageKey string) {
		common.RespondWithError(w, http.StatusUnauthorized, code,
			msgs.Lookup(RequestLanguage(r, defaultLang), messageKey))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(apiKeyHeader)
			if header == "" {
				reject(w, r, common.CodeAPIKeyRequired, "apiKey.error.required")
				return
			}

			key, secret, ok := strings.Cut(header, ":")
			if !ok || key == "" || secret == "" {
				reject(w, r, common.CodeAPIKeyMalformed, "apiKey.error.malformed")
				return
			}

			apiKey, err := repo.FindByKey(r.Context(), key)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					reject(w, r, common.CodeAPIKeyNotFound, "apiKey.error.notFound")
					return
				}
				reject(w, r, common.CodeUnknown, "http.serverError.internalServerError")
				return
			}

			now := time.Now()
			switch {
			case !apiKey.IsActive:
				reject(w, r, common.CodeAPIKeyInactive, "apiKey.error.inactive")
				return
			case apiKey.StartDate != nil && now.Before(*apiKey.StartDate):
				reject(w, r, common.CodeAPIKeyNotYetActive, "apiKey.error.notYetActive")
				return
			case apiKey.EndDate != nil && now.After(*apiKey.EndDate):
				reject(w, r, common.CodeAPIKeyExpired, "apiKey.error.expired")
				return
			}

			digest := HashAPIKey(key, secret)
			if subtle.ConstantTimeCompare([]byte(digest), []byte(apiKey.Hash)) != 1 {
				reject(w, r, common.CodeAPIKeyNotMatch, "apiKey.error.notMatch")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
