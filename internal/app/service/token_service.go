package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/common/security"
	"backoffice/internal/domain/model"
	"backoffice/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
)

var errPayloadMissing = errors.New("token data claim is missing or malformed")

type tokenKind struct {
	auth   *jwtauth.JWTAuth
	exp    time.Duration
	cipher *security.PayloadCipher
}

// TokenService builds and signs the three token kinds. Each kind has its
// own signing secret and expiry; with payload encryption enabled each kind
// also has its own cipher key, and the data claim carries ciphertext.
type TokenService struct {
	access               tokenKind
	refresh              tokenKind
	permission           tokenKind
	refreshRememberMeExp time.Duration
}

func NewTokenService(cfg *config.Config) (*TokenService, error) {
	s := &TokenService{
		access:               tokenKind{auth: jwtauth.New("HS256", cfg.AccessTokenSecret, nil), exp: cfg.AccessTokenExp},
		refresh:              tokenKind{auth: jwtauth.New("HS256", cfg.RefreshTokenSecret, nil), exp: cfg.RefreshTokenExp},
		permission:           tokenKind{auth: jwtauth.New("HS256", cfg.PermissionTokenSecret, nil), exp: cfg.PermissionTokenExp},
		refreshRememberMeExp: cfg.RefreshTokenRememberMeExp,
	}

	if cfg.PayloadEncryption {
		var err error
		if s.access.cipher, err = security.NewPayloadCipher(cfg.AccessPayloadKey); err != nil {
			return nil, fmt.Errorf("access token cipher: %w", err)
		}
		if s.refresh.cipher, err = security.NewPayloadCipher(cfg.RefreshPayloadKey); err != nil {
			return nil, fmt.Errorf("refresh token cipher: %w", err)
		}
		if s.permission.cipher, err = security.NewPayloadCipher(cfg.PermissionPayloadKey); err != nil {
			return nil, fmt.Errorf("permission token cipher: %w", err)
		}
	}
	return s, nil
}

func (s *TokenService) TokenType() string {
	return "Bearer"
}

func (s *TokenService) AccessTokenExpiresIn() int {
	return int(s.access.exp.Seconds())
}

func (s *TokenService) PermissionTokenExpiresIn() int {
	return int(s.permission.exp.Seconds())
}

func (s *TokenService) PayloadEncryption() bool {
	return s.access.cipher != nil
}

// AccessAuth exposes the verifier used by the access-token middleware.
func (s *TokenService) AccessAuth() *jwtauth.JWTAuth {
	return s.access.auth
}

// RefreshAuth exposes the verifier used by the refresh-token middleware.
func (s *TokenService) RefreshAuth() *jwtauth.JWTAuth {
	return s.refresh.auth
}

func (s *TokenService) CreateAccessToken(payload model.AccessPayload) (string, error) {
	return s.sign(s.access, s.access.exp, payload)
}

// CreateRefreshToken signs with the longer remember-me expiry when asked.
func (s *TokenService) CreateRefreshToken(payload model.RefreshPayload, rememberMe bool) (string, error) {
	exp := s.refresh.exp
	if rememberMe {
		exp = s.refreshRememberMeExp
	}
	return s.sign(s.refresh, exp, payload)
}

func (s *TokenService) CreatePermissionToken(payload model.PermissionPayload) (string, error) {
	return s.sign(s.permission, s.permission.exp, payload)
}

func (s *TokenService) DecodeAccessPayload(claims map[string]interface{}) (model.AccessPayload, error) {
	var payload model.AccessPayload
	err := s.decode(s.access, claims, &payload)
	return payload, err
}

func (s *TokenService) DecodeRefreshPayload(claims map[string]interface{}) (model.RefreshPayload, error) {
	var payload model.RefreshPayload
	err := s.decode(s.refresh, claims, &payload)
	return payload, err
}

func (s *TokenService) DecodePermissionPayload(claims map[string]interface{}) (model.PermissionPayload, error) {
	var payload model.PermissionPayload
	err := s.decode(s.permission, claims, &payload)
	return payload, err
}

func (s *TokenService) sign(kind tokenKind, exp time.Duration, payload interface{}) (string, error) {
	data, err := s.encodePayload(kind, payload)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := map[string]interface{}{
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(exp).Unix(),
		"data": data,
	}
	_, tokenString, err := kind.auth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *TokenService) encodePayload(kind tokenKind, payload interface{}) (interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token payload: %w", err)
	}
	if kind.cipher != nil {
		return kind.cipher.Encrypt(raw)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to build token payload claim: %w", err)
	}
	return m, nil
}

// decode is the inverse of sign: decryption, when configured, happens
// after signature verification (the middleware) and before claims are
// read here.
func (s *TokenService) decode(kind tokenKind, claims map[string]interface{}, out interface{}) error {
	data, ok := claims["data"]
	if !ok {
		return errPayloadMissing
	}

	var raw []byte
	if kind.cipher != nil {
		encoded, ok := data.(string)
		if !ok {
			return errPayloadMissing
		}
		var err error
		raw, err = kind.cipher.Decrypt(encoded)
		if err != nil {
			return err
		}
	} else {
		var err error
		raw, err = json.Marshal(data)
		if err != nil {
			return errPayloadMissing
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode token payload: %w", err)
	}
	return nil
}
