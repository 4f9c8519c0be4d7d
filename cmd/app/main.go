// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/passgen/cmd/app/commands"
	"github.com/allisson/passgen/internal/app"
	"github.com/allisson/passgen/internal/config"
	generatorUseCase "github.com/allisson/passgen/internal/generator/usecase"
)

var version = "1.0.0"

// withGenerator loads configuration, builds the DI container and hands the
// generator use case to the given action, closing the container afterwards.
func withGenerator(
	fn func(ctx context.Context, cmd *cli.Command, useCase generatorUseCase.GeneratorUseCase) error,
) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := config.Load()
		container := app.NewContainer(cfg)
		defer func() {
			if err := container.Shutdown(context.Background()); err != nil {
				container.Logger().Error("failed to shutdown container", slog.Any("error", err))
			}
		}()

		useCase, err := container.GeneratorUseCase()
		if err != nil {
			return err
		}
		return fn(ctx, cmd, useCase)
	}
}

func main() {
	defaults := config.Load()

	cmd := &cli.Command{
		Name:    "passgen",
		Usage:   "Constrained random passcode and passphrase generator",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "passcode",
				Usage: "Generate a random passcode from character pools",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Value:   defaults.DefaultPasscodeLength,
						Usage:   "Total passcode length",
					},
					&cli.StringSliceFlag{
						Name:    "pools",
						Aliases: []string{"p"},
						Value:   []string{"lowercase", "uppercase", "digits", "symbols"},
						Usage:   "Character pools to draw from",
					},
					&cli.IntFlag{
						Name:  "min-per-pool",
						Value: 1,
						Usage: "Minimum characters guaranteed from each selected pool",
					},
					&cli.StringFlag{
						Name:    "exclude",
						Aliases: []string{"e"},
						Usage:   "Characters removed from every pool before drawing",
					},
					&cli.BoolFlag{
						Name:  "hash",
						Usage: "Include an Argon2id hash of the passcode in the output",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: withGenerator(func(ctx context.Context, cmd *cli.Command, useCase generatorUseCase.GeneratorUseCase) error {
					return commands.RunGeneratePasscode(ctx, useCase, commands.DefaultIO(), commands.PasscodeParams{
						Length:     cmd.Int("length"),
						Pools:      cmd.StringSlice("pools"),
						MinPerPool: cmd.Int("min-per-pool"),
						Exclude:    cmd.String("exclude"),
						Hash:       cmd.Bool("hash"),
						Format:     cmd.String("format"),
					})
				}),
			},
			{
				Name:  "passphrase",
				Usage: "Generate a random passphrase from a wordlist",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "words",
						Aliases: []string{"w"},
						Value:   defaults.DefaultPassphraseWords,
						Usage:   "Number of words in the passphrase",
					},
					&cli.StringFlag{
						Name:  "wordlist",
						Value: defaults.DefaultWordlist,
						Usage: "Wordlist to draw from: 'default' or 'short'",
					},
					&cli.StringFlag{
						Name:    "separator",
						Aliases: []string{"s"},
						Value:   "-",
						Usage:   "Separator placed between words",
					},
					&cli.BoolFlag{
						Name:  "plus",
						Usage: "Append a symbol, a digit and an uppercase letter",
					},
					&cli.StringFlag{
						Name:    "exclude",
						Aliases: []string{"e"},
						Usage:   "Words containing any of these characters are skipped",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: withGenerator(func(ctx context.Context, cmd *cli.Command, useCase generatorUseCase.GeneratorUseCase) error {
					return commands.RunGeneratePassphrase(ctx, useCase, commands.DefaultIO(), commands.PassphraseParams{
						Words:     cmd.Int("words"),
						Wordlist:  cmd.String("wordlist"),
						Separator: cmd.String("separator"),
						Plus:      cmd.Bool("plus"),
						Exclude:   cmd.String("exclude"),
						Format:    cmd.String("format"),
					})
				}),
			},
			{
				Name:      "palindrome-check",
				Usage:     "Check whether a text reads the same forwards and backwards",
				ArgsUsage: "<text>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					defer func() { _ = container.Shutdown(ctx) }()

					return commands.RunCheckPalindrome(ctx, container.PalindromeUseCase(), commands.DefaultIO(), commands.PalindromeCheckParams{
						Text:   cmd.Args().First(),
						Format: cmd.String("format"),
					})
				},
			},
			{
				Name:      "palindrome-make",
				Usage:     "Build a palindrome by mirroring a half around an optional center",
				ArgsUsage: "<half>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "center",
						Aliases: []string{"c"},
						Usage:   "Single character placed at the middle of the palindrome",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					defer func() { _ = container.Shutdown(ctx) }()

					return commands.RunMirrorPalindrome(ctx, container.PalindromeUseCase(), commands.DefaultIO(), commands.PalindromeMakeParams{
						Half:   cmd.Args().First(),
						Center: cmd.String("center"),
						Format: cmd.String("format"),
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
