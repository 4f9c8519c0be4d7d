package usecase

import (
	"context"
	"time"

	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
	"github.com/allisson/passgen/internal/metrics"
)

// generatorUseCaseWithMetrics decorates GeneratorUseCase with metrics instrumentation.
type generatorUseCaseWithMetrics struct {
	next    GeneratorUseCase
	metrics metrics.BusinessMetrics
}

// NewGeneratorUseCaseWithMetrics wraps a GeneratorUseCase with metrics recording.
func NewGeneratorUseCaseWithMetrics(useCase GeneratorUseCase, m metrics.BusinessMetrics) GeneratorUseCase {
	return &generatorUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GeneratePasscode records metrics for passcode generation operations.
func (g *generatorUseCaseWithMetrics) GeneratePasscode(
	ctx context.Context,
	req *generatorDomain.PasscodeRequest,
) (*generatorDomain.Passcode, error) {
	start := time.Now()
	passcode, err := g.next.GeneratePasscode(ctx, req)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "generator", "passcode_generate", status)
	g.metrics.RecordDuration(ctx, "generator", "passcode_generate", time.Since(start), status)

	return passcode, err
}

// GeneratePassphrase records metrics for passphrase generation operations.
func (g *generatorUseCaseWithMetrics) GeneratePassphrase(
	ctx context.Context,
	req *generatorDomain.PassphraseRequest,
) (*generatorDomain.Passphrase, error) {
	start := time.Now()
	passphrase, err := g.next.GeneratePassphrase(ctx, req)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "generator", "passphrase_generate", status)
	g.metrics.RecordDuration(ctx, "generator", "passphrase_generate", time.Since(start), status)

	return passphrase, err
}
