package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-explorer/internal/search"
	"github.com/pdiddy/arxiv-explorer/internal/secrets"
	"github.com/pdiddy/arxiv-explorer/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web front-end",
	Long: `Serve exposes search, recent papers and paper details over HTTP. Each
visitor's reading history and favorites live in a signed cookie; the signing
key is read from the session-key file in server.secrets_dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			viper.Set("server.addr", addr)
		}
		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		key, err := secrets.SessionKey(cfg.Server.SecretsDir, logger)
		if err != nil {
			return err
		}

		if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		srv := web.NewServer(search.NewSearcher(client, logger), client, cfg.Server, cfg.Search.MaxResults, key, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default server.addr)")
	rootCmd.AddCommand(serveCmd)
}
