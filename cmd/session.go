package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lugo/internal/config"
	"lugo/internal/session"
	"lugo/pkg/logger"
)

// sessionCommand constructs the 'session' subcommand that opens a session for
// a given account key and prints its bearer token. Useful for local testing
// without going through the login endpoint.
func sessionCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Issues a session token for given account key",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			accountKey, _ := cmd.Flags().GetString("account")

			rdb, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			sessions := session.New(rdb, session.Options{
				Secret: cfg.Session.Secret,
				TTL:    cfg.Session.TTL,
			})

			token, err := sessions.Issue(ctx, accountKey)
			if err != nil {
				logger.Fatal(ctx, "could not issue session", zap.Error(err))
			}

			fmt.Println(token) //nolint: forbidigo
		},
	}

	cmd.Flags().String("account", "", "Account business key")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
