package main

import (
	"context"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/ironsheep/shotframe/internal/server"
)

func init() { rootCmd.AddCommand(serveCmd) }

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the MCP server on stdin/stdout",
	Long: `Run the MCP server on stdin/stdout.

The server speaks JSON-RPC 2.0, one request per line. Configure it in your
MCP client as a stdio server. Logs go to stderr; set SHOTFRAME_LOG_LEVEL=debug
for per-stage logging.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			srv := server.New(
				server.WithVersion(Version),
				server.WithDebugLogger(debugLog),
			)
			err := srv.Run(cmd.Context())
			if err != nil && !errors.Is(err, context.Canceled) {
				return errors.Wrap(err, 0)
			}
			return nil
		})
	},
}
