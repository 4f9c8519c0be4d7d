// Package http provides HTTP handlers for palindrome operations.
package http

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/allisson/passgen/internal/httputil"
	"github.com/allisson/passgen/internal/palindrome/http/dto"
	palindromeUseCase "github.com/allisson/passgen/internal/palindrome/usecase"
	customValidation "github.com/allisson/passgen/internal/validation"
)

// PalindromeHandler handles HTTP requests for palindrome operations.
type PalindromeHandler struct {
	palindromeUseCase palindromeUseCase.PalindromeUseCase
	logger            *slog.Logger
}

// NewPalindromeHandler creates a new palindrome handler with required dependencies.
func NewPalindromeHandler(
	useCase palindromeUseCase.PalindromeUseCase,
	logger *slog.Logger,
) *PalindromeHandler {
	return &PalindromeHandler{
		palindromeUseCase: useCase,
		logger:            logger,
	}
}

// CheckHandler tests whether a text equals its reverse.
// POST /v1/palindromes/check
// Returns 200 OK with the verdict.
func (h *PalindromeHandler) CheckHandler(c *gin.Context) {
	var req dto.CheckPalindromeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CheckPalindromeResponse{
		Text:       req.Text,
		Palindrome: h.palindromeUseCase.Check(c.Request.Context(), req.Text),
	})
}

// MirrorHandler constructs a palindrome from a half-sequence.
// POST /v1/palindromes
// Returns 201 Created with the constructed palindrome.
func (h *PalindromeHandler) MirrorHandler(c *gin.Context) {
	var req dto.MirrorPalindromeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	palindrome, err := h.palindromeUseCase.Mirror(c.Request.Context(), req.Half, req.Center)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MirrorPalindromeResponse{
		Palindrome: palindrome,
		Length:     utf8.RuneCountInString(palindrome),
	})
}
