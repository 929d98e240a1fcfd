package cmd

import (
	"github.com/spf13/cobra"

	"github.com/studymesh/cpaprep/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scheduler HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, st, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer syncLogger(services.Log)

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = services.Config.ListenAddr
		}

		services.Log.Info("starting HTTP API")
		return server.New(services, services.Log).Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}
