package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/common"
	"backoffice/internal/common/security"
	"backoffice/internal/domain/model"
	"backoffice/internal/domain/repository"

	"go.uber.org/zap"
)

// AuthService sequences the login, refresh, change-password and
// grant-permission flows: lookups, lockout checks, password verification,
// role resolution, token issuance. Each failure terminates the flow at the
// point of detection.
type AuthService struct {
	userRepo          repository.UserRepository
	roles             *RoleService
	settings          *SettingService
	tokens            *TokenService
	hasher            *security.PasswordHasher
	passwordExpiredIn time.Duration
	logger            *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	roles *RoleService,
	settings *SettingService,
	tokens *TokenService,
	hasher *security.PasswordHasher,
	passwordExpiredIn time.Duration,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		roles:             roles,
		settings:          settings,
		tokens:            tokens,
		hasher:            hasher,
		passwordExpiredIn: passwordExpiredIn,
		logger:            logger,
	}
}

type LoginRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type LoginResult struct {
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`

	// PasswordExpired signals the handler to override the response
	// metadata. Tokens are still issued so the client can reach the
	// change-password endpoint.
	PasswordExpired bool `json:"-"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type GrantPermissionResult struct {
	PermissionToken string `json:"permissionToken"`
	ExpiresIn       int    `json:"expiresIn"`
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.Internal(fmt.Errorf("failed to find user: %w", err))
	}

	if err := s.checkPasswordAttempt(ctx, user); err != nil {
		return nil, err
	}

	// Attempt increments happen only on a wrong password. Blocked and
	// inactive are checked after a successful match so the counter stays a
	// wrong-password count.
	if !s.hasher.Verify(req.Password, user.Password) {
		if err := s.userRepo.IncreasePasswordAttempt(ctx, user.ID); err != nil {
			return nil, common.Internal(fmt.Errorf("failed to increase password attempt: %w", err))
		}
		s.logger.Warn("login password mismatch", zap.String("user", user.ID))
		return nil, common.ErrPasswordNotMatch
	}
	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	role, err := s.activeRole(ctx, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.ResetPasswordAttempt(ctx, user.ID); err != nil {
		return nil, common.Internal(fmt.Errorf("failed to reset password attempt: %w", err))
	}

	loginDate := time.Now()
	rememberMe := req.RememberMe

	accessToken, err := s.tokens.CreateAccessToken(model.AccessPayload{
		ID:         user.ID,
		Username:   user.Username,
		Role:       role.ID,
		AccessFor:  role.AccessFor,
		RememberMe: rememberMe,
		LoginDate:  loginDate,
	})
	if err != nil {
		return nil, common.Internal(err)
	}

	refreshToken, err := s.tokens.CreateRefreshToken(model.RefreshPayload{
		ID:         user.ID,
		RememberMe: rememberMe,
		LoginDate:  loginDate,
	}, rememberMe)
	if err != nil {
		return nil, common.Internal(err)
	}

	return &LoginResult{
		TokenType:       s.tokens.TokenType(),
		ExpiresIn:       s.tokens.AccessTokenExpiresIn(),
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		PasswordExpired: s.passwordExpired(user),
	}, nil
}

// Refresh re-validates the user and role, then re-issues only the access
// token. The refresh token is reused, not rotated. Unlike login, an
// expired password fails hard here.
func (s *AuthService) Refresh(ctx context.Context, payload model.RefreshPayload, refreshToken string) (*LoginResult, error) {
	user, err := s.userRepo.FindByID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.Internal(fmt.Errorf("failed to find user: %w", err))
	}
	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	role, err := s.activeRole(ctx, user.Role)
	if err != nil {
		return nil, err
	}

	if s.passwordExpired(user) {
		return nil, common.ErrPasswordExpired
	}

	accessToken, err := s.tokens.CreateAccessToken(model.AccessPayload{
		ID:         user.ID,
		Username:   user.Username,
		Role:       role.ID,
		AccessFor:  role.AccessFor,
		RememberMe: payload.RememberMe,
		LoginDate:  payload.LoginDate,
	})
	if err != nil {
		return nil, common.Internal(err)
	}

	return &LoginResult{
		TokenType:    s.tokens.TokenType(),
		ExpiresIn:    s.tokens.AccessTokenExpiresIn(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return common.Internal(fmt.Errorf("failed to find user: %w", err))
	}

	if err := s.checkPasswordAttempt(ctx, user); err != nil {
		return err
	}

	if !s.hasher.Verify(req.OldPassword, user.Password) {
		if err := s.userRepo.IncreasePasswordAttempt(ctx, user.ID); err != nil {
			return common.Internal(fmt.Errorf("failed to increase password attempt: %w", err))
		}
		return common.ErrPasswordNotMatch
	}

	if s.hasher.Verify(req.NewPassword, user.Password) {
		return common.ErrNewPasswordMustDiffer
	}

	if err := s.userRepo.ResetPasswordAttempt(ctx, user.ID); err != nil {
		return common.Internal(fmt.Errorf("failed to reset password attempt: %w", err))
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return common.Internal(err)
	}
	created := time.Now()
	expired := created.Add(s.passwordExpiredIn)
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash, created, expired); err != nil {
		return common.Internal(fmt.Errorf("failed to update password: %w", err))
	}
	return nil
}

// GrantPermission issues an elevation token carrying exactly the subset of
// the role's permissions that match the requested scope.
func (s *AuthService) GrantPermission(ctx context.Context, payload model.AccessPayload, scope string) (*GrantPermissionResult, error) {
	if _, err := s.userRepo.FindByID(ctx, payload.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.Internal(fmt.Errorf("failed to find user: %w", err))
	}

	role, err := s.roles.FindOneByID(ctx, payload.Role)
	if err != nil {
		return nil, err
	}

	permissions, err := s.roles.FindPermissionsByIDs(ctx, role.Permissions)
	if err != nil {
		return nil, common.Internal(err)
	}

	granted := GetPermissionByGroup(permissions, scope)
	grants := make([]model.PermissionGrant, 0, len(granted))
	for _, p := range granted {
		grants = append(grants, model.PermissionGrant{Code: p.Code, Group: p.Group})
	}

	permissionToken, err := s.tokens.CreatePermissionToken(model.PermissionPayload{
		ID:          payload.ID,
		Permissions: grants,
	})
	if err != nil {
		return nil, common.Internal(err)
	}

	return &GrantPermissionResult{
		PermissionToken: permissionToken,
		ExpiresIn:       s.tokens.PermissionTokenExpiresIn(),
	}, nil
}

func (s *AuthService) checkPasswordAttempt(ctx context.Context, user *model.User) error {
	enabled, err := s.settings.GetPasswordAttempt(ctx)
	if err != nil {
		return common.Internal(err)
	}
	maxAttempt, err := s.settings.GetMaxPasswordAttempt(ctx)
	if err != nil {
		return common.Internal(err)
	}
	if enabled && user.PasswordAttempt >= maxAttempt {
		return common.ErrPasswordAttemptMax
	}
	return nil
}

func (s *AuthService) checkUserStatus(user *model.User) error {
	if user.Blocked {
		return common.ErrUserBlocked
	}
	if !user.IsActive || user.InactivePermanent {
		return common.ErrUserInactive
	}
	return nil
}

// activeRole blocks token issuance for members of a deactivated role even
// when the user itself is active.
func (s *AuthService) activeRole(ctx context.Context, roleID string) (*model.Role, error) {
	role, err := s.roles.FindOneByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if !role.IsActive {
		return nil, common.ErrRoleInactive
	}
	return role, nil
}

func (s *AuthService) passwordExpired(user *model.User) bool {
	return !user.PasswordExpired.IsZero() && time.Now().After(user.PasswordExpired)
}
