// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/passgen/internal/config"
	generatorHTTP "github.com/allisson/passgen/internal/generator/http"
	generatorService "github.com/allisson/passgen/internal/generator/service"
	generatorUseCase "github.com/allisson/passgen/internal/generator/usecase"
	"github.com/allisson/passgen/internal/http"
	"github.com/allisson/passgen/internal/metrics"
	palindromeHTTP "github.com/allisson/passgen/internal/palindrome/http"
	palindromeUseCase "github.com/allisson/passgen/internal/palindrome/usecase"
	"github.com/allisson/passgen/internal/wordlist"
)

// Container holds all application dependencies and provides methods to access
// them. It follows the lazy initialization pattern - components are created on
// first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	randomSource generatorService.RandomSource
	composer     *generatorService.Composer
	hasher       generatorService.Hasher

	// Use Cases
	generatorUC  generatorUseCase.GeneratorUseCase
	palindromeUC palindromeUseCase.PalindromeUseCase

	// Handlers and Servers
	generatorHandler  *generatorHTTP.GeneratorHandler
	palindromeHandler *palindromeHTTP.PalindromeHandler
	httpServer        *http.Server
	metricsServer     *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	randomSourceInit      sync.Once
	composerInit          sync.Once
	hasherInit            sync.Once
	generatorUCInit       sync.Once
	palindromeUCInit      sync.Once
	generatorHandlerInit  sync.Once
	palindromeHandlerInit sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided
// configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are
// disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}

		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, or nil when metrics
// are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			return
		}

		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		c.businessMetrics = bm
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// RandomSource returns the shared random source, seeded from system entropy
// on first access.
func (c *Container) RandomSource() generatorService.RandomSource {
	c.randomSourceInit.Do(func() {
		c.randomSource = generatorService.NewRandomSource()
	})
	return c.randomSource
}

// Composer returns the constrained random composer.
func (c *Container) Composer() *generatorService.Composer {
	c.composerInit.Do(func() {
		c.composer = generatorService.NewComposer(c.RandomSource())
	})
	return c.composer
}

// Hasher returns the Argon2id hasher.
func (c *Container) Hasher() generatorService.Hasher {
	c.hasherInit.Do(func() {
		c.hasher = generatorService.NewHasher()
	})
	return c.hasher
}

// GeneratorUseCase returns the generator use case, decorated with metrics when
// enabled.
func (c *Container) GeneratorUseCase() (generatorUseCase.GeneratorUseCase, error) {
	c.generatorUCInit.Do(func() {
		useCase := generatorUseCase.NewGeneratorUseCase(
			c.Composer(),
			c.Hasher(),
			wordlist.NewSource(),
		)

		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["generatorUseCase"] = err
			return
		}
		if bm != nil {
			useCase = generatorUseCase.NewGeneratorUseCaseWithMetrics(useCase, bm)
		}

		c.generatorUC = useCase
	})
	if storedErr, exists := c.initErrors["generatorUseCase"]; exists {
		return nil, storedErr
	}
	return c.generatorUC, nil
}

// PalindromeUseCase returns the palindrome use case.
func (c *Container) PalindromeUseCase() palindromeUseCase.PalindromeUseCase {
	c.palindromeUCInit.Do(func() {
		c.palindromeUC = palindromeUseCase.NewPalindromeUseCase()
	})
	return c.palindromeUC
}

// GeneratorHandler returns the HTTP handler for generation operations.
func (c *Container) GeneratorHandler() (*generatorHTTP.GeneratorHandler, error) {
	c.generatorHandlerInit.Do(func() {
		useCase, err := c.GeneratorUseCase()
		if err != nil {
			c.initErrors["generatorHandler"] = err
			return
		}

		c.generatorHandler = generatorHTTP.NewGeneratorHandler(
			useCase,
			c.config.DefaultWordlist,
			c.Logger(),
		)
	})
	if storedErr, exists := c.initErrors["generatorHandler"]; exists {
		return nil, storedErr
	}
	return c.generatorHandler, nil
}

// PalindromeHandler returns the HTTP handler for palindrome operations.
func (c *Container) PalindromeHandler() *palindromeHTTP.PalindromeHandler {
	c.palindromeHandlerInit.Do(func() {
		c.palindromeHandler = palindromeHTTP.NewPalindromeHandler(
			c.PalindromeUseCase(),
			c.Logger(),
		)
	})
	return c.palindromeHandler
}

// HTTPServer returns the API HTTP server with all its dependencies.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		generatorHandler, err := c.GeneratorHandler()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}

		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}

		c.httpServer = http.NewServer(
			c.config,
			generatorHandler,
			c.PalindromeHandler(),
			metricsProvider,
			c.Logger(),
		)
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics
// are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}

		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP server if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	// Shutdown metrics server if initialized
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Flush pending metrics if the provider was initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
