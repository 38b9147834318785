package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/talegari/safer/cmd/app/commands"
	"github.com/talegari/safer/internal/app"
	"github.com/talegari/safer/internal/config"
)

// keyFlags are shared by every command that needs key material: a passphrase
// for the symmetric path, or a private/public key pair for the box path.
func keyFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "passphrase",
			Aliases: []string{"p"},
			Value:   cfg.DefaultPassphrase,
			Usage:   "Passphrase for symmetric encryption",
		},
		&cli.StringFlag{
			Name:  "private-key",
			Usage: "Base64 private key for asymmetric encryption (requires --public-key)",
		},
		&cli.StringFlag{
			Name:  "public-key",
			Usage: "Base64 public key for asymmetric encryption (requires --private-key)",
		},
	}
}

func getCryptoCommands() []*cli.Command {
	cfg := config.Load()

	return []*cli.Command{
		{
			Name:  "keygen",
			Usage: "Generate a curve25519 key pair for asymmetric encryption",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "seed",
					Aliases: []string{"s"},
					Usage:   "Base64 32-byte seed for deterministic generation (omit for random)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelope, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				return commands.RunKeygen(
					envelope,
					commands.DefaultIO().Writer,
					cmd.String("seed"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "encrypt-string",
			Usage:     "Encrypt a string and print the base64 result",
			ArgsUsage: "<string>",
			Flags:     keyFlags(cfg),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelope, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncryptString(
					ctx,
					envelope,
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("passphrase"),
					cmd.String("private-key"),
					cmd.String("public-key"),
				)
			},
		},
		{
			Name:      "decrypt-string",
			Usage:     "Decrypt a base64 encrypted string and print the plaintext",
			ArgsUsage: "<string>",
			Flags:     keyFlags(cfg),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelope, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecryptString(
					ctx,
					envelope,
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("passphrase"),
					cmd.String("private-key"),
					cmd.String("public-key"),
				)
			},
		},
		{
			Name:  "encrypt-file",
			Usage: "Encrypt a file",
			Flags: append(keyFlags(cfg),
				&cli.StringFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Path of the file to encrypt",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Path of the encrypted file (defaults to <input>.safer)",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelope, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncryptFile(
					ctx,
					envelope,
					cmd.String("input"),
					cmd.String("output"),
					cmd.String("passphrase"),
					cmd.String("private-key"),
					cmd.String("public-key"),
				)
			},
		},
		{
			Name:  "decrypt-file",
			Usage: "Decrypt a file",
			Flags: append(keyFlags(cfg),
				&cli.StringFlag{
					Name:     "input",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Path of the encrypted file",
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Path to write the decrypted file",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelope, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecryptFile(
					ctx,
					envelope,
					cmd.String("input"),
					cmd.String("output"),
					cmd.String("passphrase"),
					cmd.String("private-key"),
					cmd.String("public-key"),
				)
			},
		},
	}
}
