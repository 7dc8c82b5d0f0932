package middleware

import (
	"context"
	"errors"
	"net/http"

	"backoffice/internal/app/service"
	"backoffice/internal/common"
	"backoffice/internal/common/security"
	"backoffice/internal/domain/model"
	"backoffice/internal/i18n"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	AccessPayloadCtxKey  contextKey = "accessPayload"
	RefreshPayloadCtxKey contextKey = "refreshPayload"
	RefreshTokenCtxKey   contextKey = "refreshToken"
)

// Guards holds the pieces the token middlewares need. Signature checks run
// in jwtauth.Verifier (installed per route group); these authenticators
// then decrypt and decode the payload claim.
type Guards struct {
	tokens *service.TokenService
	msgs   *i18n.Catalog
	lang   string
}

func NewGuards(tokens *service.TokenService, msgs *i18n.Catalog, defaultLang string) *Guards {
	return &Guards{tokens: tokens, msgs: msgs, lang: defaultLang}
}

func (g *Guards) AccessAuthenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := g.verifiedClaims(w, r)
		if !ok {
			return
		}
		payload, err := g.tokens.DecodeAccessPayload(claims)
		if err != nil {
			g.unauthorized(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), AccessPayloadCtxKey, payload)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Guards) RefreshAuthenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := g.verifiedClaims(w, r)
		if !ok {
			return
		}
		payload, err := g.tokens.DecodeRefreshPayload(claims)
		if err != nil {
			g.unauthorized(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), RefreshPayloadCtxKey, payload)
		ctx = context.WithValue(ctx, RefreshTokenCtxKey, jwtauth.TokenFromHeader(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Guards) verifiedClaims(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		g.unauthorized(w, r, err)
		return nil, false
	}
	return claims, true
}

func (g *Guards) unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	messageKey := common.ErrTokenUnauthorized.MessageKey
	if errors.Is(err, security.ErrCipherInvalid) {
		// Signature was valid but the payload failed decryption; report it
		// distinctly so key mismatches are diagnosable.
		messageKey = "auth.error.payloadInvalid"
	}
	common.RespondWithError(w, http.StatusUnauthorized, common.CodeTokenUnauthorized,
		g.msgs.Lookup(RequestLanguage(r, g.lang), messageKey))
}

// GetAccessPayload extracts the decoded access payload placed by
// AccessAuthenticator.
func GetAccessPayload(ctx context.Context) (model.AccessPayload, bool) {
	payload, ok := ctx.Value(AccessPayloadCtxKey).(model.AccessPayload)
	return payload, ok
}

func GetRefreshPayload(ctx context.Context) (model.RefreshPayload, bool) {
	payload, ok := ctx.Value(RefreshPayloadCtxKey).(model.RefreshPayload)
	return payload, ok
}

func GetRefreshToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(RefreshTokenCtxKey).(string)
	return token, ok
}

// RequestLanguage reads the caller's language preference.
func RequestLanguage(r *http.Request, fallback string) string {
	if lang := r.Header.Get("x-custom-lang"); lang != "" {
		return lang
	}
	return fallback
}
