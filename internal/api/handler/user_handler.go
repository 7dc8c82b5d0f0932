package handler

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/api/middleware"
	"backoffice/internal/app/service"
	"backoffice/internal/common"
	"backoffice/internal/i18n"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var allowedPhotoMimes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

type UserHandler struct {
	authService  *service.AuthService
	userService  *service.UserService
	fileService  *service.FileService
	validate     *validator.Validate
	msgs         *i18n.Catalog
	defaultLang  string
	maxPhotoSize int64
}

func NewUserHandler(
	authService *service.AuthService,
	userService *service.UserService,
	fileService *service.FileService,
	validate *validator.Validate,
	msgs *i18n.Catalog,
	defaultLang string,
	maxPhotoSize int64,
) *UserHandler {
	return &UserHandler{
		authService:  authService,
		userService:  userService,
		fileService:  fileService,
		validate:     validate,
		msgs:         msgs,
		defaultLang:  defaultLang,
		maxPhotoSize: maxPhotoSize,
	}
}

// RegisterPublicRoutes mounts the endpoints that need no token.
func (h *UserHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/login", h.login)
}

// RegisterRefreshRoutes mounts behind the refresh-token guard.
func (h *UserHandler) RegisterRefreshRoutes(r chi.Router) {
	r.Post("/refresh", h.refresh)
}

// RegisterProtectedRoutes mounts behind the access-token guard.
func (h *UserHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Patch("/change-password", h.changePassword)
	r.Get("/info", h.info)
	r.Post("/grant-permission", h.grantPermission)
	r.Get("/profile", h.profile)
	r.Post("/profile/upload", h.upload)
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// Expired password still returns the tokens so the client can reach
	// the change-password endpoint, but the metadata signals the failure.
	if result.PasswordExpired {
		common.RespondWithJSON(w, http.StatusOK, common.Envelope{
			Metadata: common.Metadata{
				StatusCode: common.CodeUserPasswordExpired,
				Message:    h.msgs.Lookup(h.lang(r), "user.error.passwordExpired"),
			},
			Data: result,
		})
		return
	}
	h.respondOK(w, r, "user.login", result)
}

func (h *UserHandler) refresh(w http.ResponseWriter, r *http.Request) {
	payload, ok := middleware.GetRefreshPayload(r.Context())
	if !ok {
		h.respondError(w, r, common.ErrTokenUnauthorized)
		return
	}
	refreshToken, _ := middleware.GetRefreshToken(r.Context())

	result, err := h.authService.Refresh(r.Context(), payload, refreshToken)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondOK(w, r, "user.refresh", result)
}

func (h *UserHandler) changePassword(w http.ResponseWriter, r *http.Request) {
	payload, ok := middleware.GetAccessPayload(r.Context())
	if !ok {
		h.respondError(w, r, common.ErrTokenUnauthorized)
		return
	}

	var req service.ChangePasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.authService.ChangePassword(r.Context(), payload.ID, req); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondOK(w, r, "user.changePassword", nil)
}

// info echoes the decoded access-token payload.
func (h *UserHandler) info(w http.ResponseWriter, r *http.Request) {
	payload, ok := middleware.GetAccessPayload(r.Context())
	if !ok {
		h.respondError(w, r, common.ErrTokenUnauthorized)
		return
	}
	h.respondOK(w, r, "user.info", payload)
}

type grantPermissionRequest struct {
	Scope string `json:"scope" validate:"required"`
}

func (h *UserHandler) grantPermission(w http.ResponseWriter, r *http.Request) {
	payload, ok := middleware.GetAccessPayload(r.Context())
	if !ok {
		h.respondError(w, r, common.ErrTokenUnauthorized)
		return
	}

	var req grantPermissionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.authService.GrantPermission(r.Context(), payload, req.Scope)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondOK(w, r, "user.grantPermission", result)
}

func (h *UserHandler) profile(w http.ResponseWriter, r *http.Request) {
	payload, ok := middleware.GetAccessPayload(r.Context())
	if !ok {
		h.respondError(w, r, common.ErrTokenUnauthorized)
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), payload.ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondOK(w, r, "user.profile", profile)
}

func (h *UserHandler) upload(w http.ResponseWriter, r *http.Request) {
	payload, ok := middleware.GetAccessPayload(r.Context())
	if !ok {
		h.respondError(w, r, common.ErrTokenUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.maxPhotoSize); err != nil {
		h.respondValidation(w, r, "file.error.maxSize")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondValidation(w, r, "file.error.required")
		return
	}
	defer file.Close()

	if header.Size > h.maxPhotoSize {
		h.respondValidation(w, r, "file.error.maxSize")
		return
	}
	mime := header.Header.Get("Content-Type")
	if !allowedPhotoMimes[mime] {
		h.respondValidation(w, r, "file.error.mimeInvalid")
		return
	}

	photo, err := h.fileService.PutProfilePhoto(r.Context(), payload.ID, header.Filename, mime, header.Size, file)
	if err != nil {
		h.respondError(w, r, common.Internal(err))
		return
	}
	if err := h.userService.UpdatePhoto(r.Context(), payload.ID, photo); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondOK(w, r, "user.upload", photo)
}

func (h *UserHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.respondValidation(w, r, "request.validation")
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondValidation(w, r, "request.validation")
		return false
	}
	return true
}

func (h *UserHandler) respondValidation(w http.ResponseWriter, r *http.Request, messageKey string) {
	common.RespondWithError(w, http.StatusBadRequest, common.CodeValidation,
		h.msgs.Lookup(h.lang(r), messageKey))
}

func (h *UserHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code, messageKey := common.CodeOf(err)
	common.RespondWithError(w, common.HTTPStatusFromError(err), code,
		h.msgs.Lookup(h.lang(r), messageKey))
}

func (h *UserHandler) respondOK(w http.ResponseWriter, r *http.Request, messageKey string, data interface{}) {
	common.RespondWithJSON(w, http.StatusOK, common.Envelope{
		Metadata: common.Metadata{
			StatusCode: http.StatusOK,
			Message:    h.msgs.Lookup(h.lang(r), messageKey),
		},
		Data: data,
	})
}

func (h *UserHandler) lang(r *http.Request) string {
	return middleware.RequestLanguage(r, h.defaultLang)
}
