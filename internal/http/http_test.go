// Package http provides the Gin HTTP servers, routes, and middleware.
package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passgen/internal/config"
	generatorHTTP "github.com/allisson/passgen/internal/generator/http"
	generatorService "github.com/allisson/passgen/internal/generator/service"
	generatorUseCase "github.com/allisson/passgen/internal/generator/usecase"
	palindromeHTTP "github.com/allisson/passgen/internal/palindrome/http"
	palindromeUseCase "github.com/allisson/passgen/internal/palindrome/usecase"
	"github.com/allisson/passgen/internal/wordlist"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// createTestServer wires a full server over the real use cases with metrics
// disabled and a discarding logger.
func createTestServer(cfg *config.Config) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	composer := generatorService.NewComposer(generatorService.NewRandomSource())
	genUseCase := generatorUseCase.NewGeneratorUseCase(composer, generatorService.NewHasher(), wordlist.NewSource())

	generatorHandler := generatorHTTP.NewGeneratorHandler(genUseCase, cfg.DefaultWordlist, logger)
	palindromeHandler := palindromeHTTP.NewPalindromeHandler(palindromeUseCase.NewPalindromeUseCase(), logger)

	return NewServer(cfg, generatorHandler, palindromeHandler, nil, logger)
}

func defaultTestConfig() *config.Config {
	return &config.Config{
		ServerHost:      "localhost",
		ServerPort:      8080,
		DefaultWordlist: wordlist.NameDefault,
	}
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestServer_HealthEndpoints(t *testing.T) {
	server := createTestServer(defaultTestConfig())

	t.Run("Success_Health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response["status"])
	})

	t.Run("Success_Ready", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ready", response["status"])
	})
}

func TestServer_RequestIDHeader(t *testing.T) {
	server := createTestServer(defaultTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestServer_GenerationRoutes(t *testing.T) {
	server := createTestServer(defaultTestConfig())

	t.Run("Success_Passcode", func(t *testing.T) {
		w := postJSON(t, server.GetHandler(), "/v1/passcodes", map[string]any{
			"length": 16,
			"pools":  []string{"lowercase", "uppercase", "digits", "symbols"},
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response["passcode"], 16)
	})

	t.Run("Success_Passphrase", func(t *testing.T) {
		w := postJSON(t, server.GetHandler(), "/v1/passphrases", map[string]any{
			"words":     4,
			"separator": "-",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, wordlist.NameDefault, response["wordlist"])
	})

	t.Run("Success_PalindromeMirror", func(t *testing.T) {
		w := postJSON(t, server.GetHandler(), "/v1/palindromes", map[string]any{
			"half":   "ab",
			"center": "c",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "abcba", response["palindrome"])
	})

	t.Run("Success_PalindromeCheck", func(t *testing.T) {
		w := postJSON(t, server.GetHandler(), "/v1/palindromes/check", map[string]any{
			"text": "abba",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, true, response["palindrome"])
	})

	t.Run("Error_UnprocessableRequest", func(t *testing.T) {
		w := postJSON(t, server.GetHandler(), "/v1/passcodes", map[string]any{
			"length": 16,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCustomLoggerMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Success_UnderLimit", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(100, 100, logger))
		router.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		for i := 0; i < 10; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Error_BurstExceeded", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(1, 2, logger))
		router.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		var lastCode int
		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("Error_ResponseShape", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(1, 1, logger))
		router.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		// Exhaust the single-token bucket, then hit the limit.
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code == http.StatusTooManyRequests {
				var response map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "rate_limit_exceeded", response["error"])
				assert.NotEmpty(t, w.Header().Get("Retry-After"))
				return
			}
		}
		t.Fatal("rate limit never triggered")
	})
}
