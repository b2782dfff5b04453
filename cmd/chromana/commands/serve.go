package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chromana/chromana/logger"
	"github.com/chromana/chromana/server"
	"github.com/chromana/chromana/workspace"
)

// ServeCmd serves the previews over HTTP.
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Serve the built previews and fonts",
	Long: `Start a local HTTP server over the demo pages and built fonts.
With --watch, changes under the icons directory rebuild the affected
icon sets and connected preview pages reload automatically.`,
	RunE: runServe,
}

var (
	servePort  int
	serveWatch bool
)

func init() {
	ServeCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default: configured port)")
	ServeCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "Rebuild icon sets on artwork changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Load()
	if err != nil {
		return err
	}
	if servePort > 0 {
		ws.Server.Port = servePort
	}

	srv, err := server.New(ws, logger.Named("server"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatch {
		watcher, err := server.NewWatcher(ws, newRunner(ws), srv, logger.Named("watch"))
		if err != nil {
			return err
		}
		watcher.Start()
		defer watcher.Stop()
	}

	return srv.Start(ctx)
}
