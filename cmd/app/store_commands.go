package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/talegari/safer/cmd/app/commands"
	"github.com/talegari/safer/internal/app"
	"github.com/talegari/safer/internal/config"
)

func getStoreCommands() []*cli.Command {
	cfg := config.Load()

	return []*cli.Command{
		{
			Name:      "store-put",
			Usage:     "Encrypt a value and write it to the blob bucket",
			ArgsUsage: "<name> <value>",
			Flags:     keyFlags(cfg),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelope, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}
				store, err := container.StoreUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunStorePut(
					ctx,
					store,
					envelope,
					cmd.Args().Get(0),
					cmd.Args().Get(1),
					cmd.String("passphrase"),
					cmd.String("private-key"),
					cmd.String("public-key"),
				)
			},
		},
		{
			Name:      "store-get",
			Usage:     "Read a value from the blob bucket and print the plaintext",
			ArgsUsage: "<name>",
			Flags:     keyFlags(cfg),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				envelope, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}
				store, err := container.StoreUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunStoreGet(
					ctx,
					store,
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
			Name:      "store-delete",
			Usage:     "Remove a value from the blob bucket",
			ArgsUsage: "<name>",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				store, err := container.StoreUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunStoreDelete(ctx, store, cmd.Args().First())
			},
		},
	}
}
