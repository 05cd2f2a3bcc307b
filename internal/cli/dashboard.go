package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arturyumaev/casinodesk/internal/web"
)

func newDashboardCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Serve the read-only HTML dashboard",
		Long: `Serve the read-only HTML dashboard.

The dashboard shows economy statistics and this session's player grid.
All mutations still go through the console commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			router := web.NewRouter(web.RouterConfig{
				Logger:          newLogger(cfg.Verbose),
				StatsController: app.StatsController,
				GridController:  app.GridController,
				SessionID:       app.SessionID,
			})

			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", port),
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ListenAndServe()
			}()

			NewOutput(cfg.Output).PrintMessage("Dashboard listening on " + server.Addr)

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 8090, "Dashboard listen port")

	return cmd
}
