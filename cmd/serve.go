package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
)

var port int // Listen port, 0 uses the config value

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *schedulerConfig
		if port != 0 {
			cfg.Port = port
		}
		app := api.NewApp(&cfg)

		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit
			logrus.Info("shutting down")
			if err := app.Shutdown(); err != nil {
				logrus.Errorf("shutdown: %v", err)
			}
		}()

		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("listening on %s (rr quantum=%d, max processes=%d)",
			addr, cfg.RoundRobinTimeQuantum, cfg.MaxProcesses)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from config)")

	rootCmd.AddCommand(serveCmd)
}
