// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
)

// MockGeneratorUseCase is a mock implementation of GeneratorUseCase for testing.
type MockGeneratorUseCase struct {
	mock.Mock
}

// GeneratePasscode mocks the GeneratePasscode method of GeneratorUseCase.
func (m *MockGeneratorUseCase) GeneratePasscode(
	ctx context.Context,
	request *generatorDomain.PasscodeRequest,
) (*generatorDomain.Passcode, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generatorDomain.Passcode), args.Error(1)
}

// GeneratePassphrase mocks the GeneratePassphrase method of GeneratorUseCase.
func (m *MockGeneratorUseCase) GeneratePassphrase(
	ctx context.Context,
	request *generatorDomain.PassphraseRequest,
) (*generatorDomain.Passphrase, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generatorDomain.Passphrase), args.Error(1)
}
