package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/greenshare/internal/dashboard"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard over HTTP",
	Long: `Serve loads the dataset and starts the dashboard web server.

The dataset is loaded once at startup; a load failure aborts with a non-zero
exit. POST /api/reload re-reads the source without a restart. SIGINT and
SIGTERM trigger a graceful shutdown.

Example:
  greenshare serve --data cleaned_renewable_data.csv --port 8501`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Override HTTP port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := dashboard.SetupSignalHandler(context.Background(), func(sig os.Signal) {
		a.log.Infow("Received shutdown signal", "signal", sig.String())
	})
	defer cancel()

	if _, err := a.snapshot(ctx); err != nil {
		return err
	}

	srv, err := dashboard.New(a.cfg, a.cache, a.log)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
