package cmd

import (
	"github.com/spf13/cobra"

	"agrimate/cmd/portal"
	"agrimate/cmd/seed"
	"agrimate/cmd/server"
	"agrimate/common/log"
)

var rootCmd = &cobra.Command{
	Use:          "agrimate",
	Short:        "AgriMate farmer support system",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(server.StartCmd, seed.StartCmd, portal.StartCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Logger().Error(err.Error())
		log.Exit(1)
	}
}
