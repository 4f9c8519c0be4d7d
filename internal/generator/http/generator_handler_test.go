package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
	"github.com/allisson/passgen/internal/generator/http/dto"
	"github.com/allisson/passgen/internal/generator/usecase/mocks"
)

// setupGeneratorTestHandler creates a test generator handler with mocked dependencies.
func setupGeneratorTestHandler(t *testing.T) (*GeneratorHandler, *mocks.MockGeneratorUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockGeneratorUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewGeneratorHandler(mockUseCase, "default", logger)

	return handler, mockUseCase
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestGeneratorHandler_GeneratePasscodeHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupGeneratorTestHandler(t)

		request := dto.GeneratePasscodeRequest{
			Length: 16,
			Pools:  []string{"lowercase", "uppercase", "digits", "symbols"},
		}

		expectedPasscode := &generatorDomain.Passcode{
			Value:       "aB3~xYz9Qw1!mN2@",
			Length:      16,
			Pools:       generatorDomain.AllPools(),
			EntropyBits: 99.65,
		}

		mockUseCase.On("GeneratePasscode", mock.Anything, mock.Anything).
			Return(expectedPasscode, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/passcodes", request)

		handler.GeneratePasscodeHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.PasscodeResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, expectedPasscode.Value, response.Passcode)
		assert.Equal(t, 16, response.Length)
		assert.Equal(t, []string{"lowercase", "uppercase", "digits", "symbols"}, response.Pools)
		assert.InDelta(t, 99.65, response.EntropyBits, 0.001)
		assert.Empty(t, response.HashedPasscode)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_HashedPasscodeIncluded", func(t *testing.T) {
		handler, mockUseCase := setupGeneratorTestHandler(t)

		request := dto.GeneratePasscodeRequest{
			Length: 16,
			Pools:  []string{"lowercase"},
			Hash:   true,
		}

		expectedPasscode := &generatorDomain.Passcode{
			Value:       "abcdefghijklmnop",
			Length:      16,
			Pools:       []generatorDomain.PoolName{generatorDomain.PoolLowercase},
			HashedValue: "$argon2id$v=19$m=65536,t=3,p=4$test-hash",
		}

		mockUseCase.On("GeneratePasscode", mock.Anything, mock.Anything).
			Return(expectedPasscode, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/passcodes", request)

		handler.GeneratePasscodeHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.PasscodeResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, expectedPasscode.HashedValue, response.HashedPasscode)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupGeneratorTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/passcodes", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.GeneratePasscodeHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "bad_request", response["error"])
	})

	t.Run("Error_MissingPools", func(t *testing.T) {
		handler, _ := setupGeneratorTestHandler(t)

		request := dto.GeneratePasscodeRequest{Length: 16}

		c, w := createTestContext(http.MethodPost, "/v1/passcodes", request)

		handler.GeneratePasscodeHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "validation_error", response["error"])
	})

	t.Run("Error_LengthBelowRequiredMinimum", func(t *testing.T) {
		handler, mockUseCase := setupGeneratorTestHandler(t)

		request := dto.GeneratePasscodeRequest{
			Length: 2,
			Pools:  []string{"lowercase", "uppercase", "digits", "symbols"},
		}

		mockUseCase.On("GeneratePasscode", mock.Anything, mock.Anything).
			Return(nil, generatorDomain.ErrInvalidLength).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/passcodes", request)

		handler.GeneratePasscodeHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "invalid_input", response["error"])

		mockUseCase.AssertExpectations(t)
	})
}

func TestGeneratorHandler_GeneratePassphraseHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupGeneratorTestHandler(t)

		request := dto.GeneratePassphraseRequest{
			Words:     4,
			Separator: "-",
		}

		expectedPassphrase := &generatorDomain.Passphrase{
			Value:       "river-stone-maple-cloud",
			Words:       4,
			Wordlist:    "default",
			EntropyBits: 36.9,
		}

		mockUseCase.On("GeneratePassphrase", mock.Anything, mock.MatchedBy(
			func(req *generatorDomain.PassphraseRequest) bool {
				return req.Words == 4 && req.Wordlist == "default" && req.Separator == "-"
			},
		)).Return(expectedPassphrase, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/passphrases", request)

		handler.GeneratePassphraseHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.PassphraseResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, expectedPassphrase.Value, response.Passphrase)
		assert.Equal(t, 4, response.Words)
		assert.Equal(t, "default", response.Wordlist)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupGeneratorTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/passphrases", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("{")))

		handler.GeneratePassphraseHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_MissingWords", func(t *testing.T) {
		handler, _ := setupGeneratorTestHandler(t)

		request := dto.GeneratePassphraseRequest{}

		c, w := createTestContext(http.MethodPost, "/v1/passphrases", request)

		handler.GeneratePassphraseHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_UnknownWordlist", func(t *testing.T) {
		handler, mockUseCase := setupGeneratorTestHandler(t)

		request := dto.GeneratePassphraseRequest{
			Words:    4,
			Wordlist: "klingon",
		}

		mockUseCase.On("GeneratePassphrase", mock.Anything, mock.Anything).
			Return(nil, generatorDomain.ErrWordlistNotFound).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/passphrases", request)

		handler.GeneratePassphraseHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "not_found", response["error"])

		mockUseCase.AssertExpectations(t)
	})
}
