// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gharrison91/camp-connect-sub002/cmd/app/commands"
)

func main() {
	cmd := &cli.Command{
		Name:    "campconnect",
		Usage:   "Camp Connect API server and tooling",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, cmd.Root().Version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "list-permissions",
				Usage: "Print the permission catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunListPermissions(cmd.String("format"), commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
