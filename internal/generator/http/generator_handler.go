// Package http provides HTTP handlers for pass-string generation operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/passgen/internal/generator/http/dto"
	generatorUseCase "github.com/allisson/passgen/internal/generator/usecase"
	"github.com/allisson/passgen/internal/httputil"
	customValidation "github.com/allisson/passgen/internal/validation"
)

// GeneratorHandler handles HTTP requests for pass-string generation.
type GeneratorHandler struct {
	generatorUseCase generatorUseCase.GeneratorUseCase
	defaultWordlist  string
	logger           *slog.Logger
}

// NewGeneratorHandler creates a new generator handler with required dependencies.
func NewGeneratorHandler(
	useCase generatorUseCase.GeneratorUseCase,
	defaultWordlist string,
	logger *slog.Logger,
) *GeneratorHandler {
	return &GeneratorHandler{
		generatorUseCase: useCase,
		defaultWordlist:  defaultWordlist,
		logger:           logger,
	}
}

// GeneratePasscodeHandler generates a constrained random passcode.
// POST /v1/passcodes
// Returns 201 Created with the passcode, its pools, and entropy bits.
func (h *GeneratorHandler) GeneratePasscodeHandler(c *gin.Context) {
	var req dto.GeneratePasscodeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	domainReq, err := req.ToDomain()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	passcode, err := h.generatorUseCase.GeneratePasscode(c.Request.Context(), domainReq)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPasscodeToResponse(passcode))
}

// GeneratePassphraseHandler generates a passphrase from a compiled-in wordlist.
// POST /v1/passphrases
// Returns 201 Created with the passphrase and entropy bits.
func (h *GeneratorHandler) GeneratePassphraseHandler(c *gin.Context) {
	var req dto.GeneratePassphraseRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	passphrase, err := h.generatorUseCase.GeneratePassphrase(
		c.Request.Context(),
		req.ToDomain(h.defaultWordlist),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPassphraseToResponse(passphrase))
}
