package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/fundverse/backend/internal/server"
	"github.com/fundverse/backend/internal/storage"
)

func newServeCommand(opts *RootOptions) *cobra.Command {
	var (
		transport string
		addr      string
		dbPath    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the FundVerse MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if transport != "" {
				cfg.Server.Transport = transport
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if dbPath != "" {
				cfg.Storage.Path = dbPath
			}
			log := newLogger(cfg)

			st, err := storage.Open(cfg.Storage.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := server.New(st, log)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			switch cfg.Server.Transport {
			case "stdio":
				log.Info().Str("db", cfg.Storage.Path).Msg("serving on stdio")
				return srv.Run(ctx, &mcp.StdioTransport{})
			case "http":
				handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
					return srv
				}, nil)
				httpServer := &http.Server{
					Addr:    cfg.Server.Addr,
					Handler: handler,
				}
				go func() {
					<-ctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					httpServer.Shutdown(shutdownCtx)
				}()
				log.Info().Str("addr", cfg.Server.Addr).Str("db", cfg.Storage.Path).Msg("serving on http")
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			default:
				return fmt.Errorf("unknown transport %q", cfg.Server.Transport)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "", "transport to serve on (stdio or http)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address for the http transport")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to the database file")

	return cmd
}
