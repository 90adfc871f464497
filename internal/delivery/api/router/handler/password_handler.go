package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vault/internal/delivery/api/response"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PasswordHandlerParams holds dependencies for PasswordHandler, injected by Fx.
type PasswordHandlerParams struct {
	fx.In

	PasswordUC usecase.PasswordUsecase
	Logger     *slog.Logger
}

// PasswordHandler holds dependencies for password-related handlers
type PasswordHandler struct {
	passwordUC usecase.PasswordUsecase
	logger     *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler
func NewPasswordHandler(params PasswordHandlerParams) *PasswordHandler {
	return &PasswordHandler{
		passwordUC: params.PasswordUC,
		logger:     params.Logger,
	}
}

// AnalyzeRequest represents the request body for scoring a password
type AnalyzeRequest struct {
	Password string `json:"password" validate:"max=4096"`
	Enhanced bool   `json:"enhanced"`
}

// GenerateRequest represents the request body for generating a password.
// Omitted toggles fall back to the configured defaults.
type GenerateRequest struct {
	Length    int   `json:"length" validate:"min=0,max=1024"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Enhanced  bool  `json:"enhanced"`
}

// QRCodeRequest carries the password to render. The bound stays well inside
// QR capacity for any generated password.
type QRCodeRequest struct {
	Password string `json:"password" validate:"required,max=1024"`
}

// PasswordRequest carries a single required password
type PasswordRequest struct {
	Password string `json:"password" validate:"required,max=4096"`
}

// VerifyRequest represents the request body for checking a password against a hash
type VerifyRequest struct {
	Password string `json:"password" validate:"required,max=4096"`
	Hash     string `json:"hash" validate:"required,max=256"`
}

// HashResponse is returned by the hash endpoint
type HashResponse struct {
	Hash string `json:"hash"`
}

// VerifyResponse is returned by the verify endpoint
type VerifyResponse struct {
	Match bool `json:"match"`
}

// Analyze handles password strength scoring
func (h *PasswordHandler) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analyze input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	analysis, err := h.passwordUC.Analyze(c.Request().Context(), req.Password, req.Enhanced)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analysis)
}

// Generate handles password generation
func (h *PasswordHandler) Generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid generate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	generated, err := h.passwordUC.Generate(c.Request().Context(), &usecase.GenerateInput{
		Length:    req.Length,
		Uppercase: req.Uppercase,
		Lowercase: req.Lowercase,
		Numbers:   req.Numbers,
		Symbols:   req.Symbols,
		Enhanced:  req.Enhanced,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, generated)
}

// Options returns the generator defaults and bounds for the requested mode
func (h *PasswordHandler) Options(c echo.Context) error {
	enhanced := false
	if raw := c.QueryParam("enhanced"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "enhanced must be a boolean")
		}
		enhanced = v
	}

	return response.Success(c, http.StatusOK, h.passwordUC.Settings(c.Request().Context(), enhanced))
}

// QRCode renders the password as a PNG QR code
func (h *PasswordHandler) QRCode(c echo.Context) error {
	var req QRCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	png, err := h.passwordUC.GenerateQR(c.Request().Context(), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// Hash returns a bcrypt hash of the password
func (h *PasswordHandler) Hash(c echo.Context) error {
	var req PasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hash input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	hash, err := h.passwordUC.Hash(c.Request().Context(), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HashResponse{Hash: hash})
}

// Verify checks a password against a bcrypt hash
func (h *PasswordHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verify input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	match := h.passwordUC.Verify(c.Request().Context(), req.Password, req.Hash)

	return response.Success(c, http.StatusOK, VerifyResponse{Match: match})
}
