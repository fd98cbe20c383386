package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/drill-cost/internal/logging"
	"github.com/iwvelando/drill-cost/internal/server"
	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverCfgPath, _ := cmd.Flags().GetString("server-config")
			address, _ := cmd.Flags().GetString("address")
			logLevel, _ := cmd.Flags().GetString("log-level")

			cfg, err := server.LoadConfig(serverCfgPath)
			if err != nil {
				return fmt.Errorf("failed to load server configuration: %w", err)
			}
			if address != "" {
				cfg.Address = address
			}

			logger, err := logging.New(cfg.Logging, logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			srv := &http.Server{
				Addr:              cfg.Address,
				Handler:           server.NewHandler(logger, cfg.UploadSizeBytes(), version),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening on "+cfg.Address,
					zap.String("op", "serve"),
					zap.Int64("max_upload_bytes", cfg.UploadSizeBytes()),
				)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server stopped: %w", err)
			case <-ctx.Done():
			}

			logger.Info("shutting down",
				zap.String("op", "serve"),
			)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().String("address", "", "listen address override, e.g. :8080")
	return cmd
}
