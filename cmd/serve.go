package cmd

import (
	"github.com/bgraf/pagetags/cmd/serve"
	"github.com/bgraf/pagetags/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview of the site",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "Listen address")

	if err := viper.BindPFlag(config.KeyServeAddress, serveCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
}
