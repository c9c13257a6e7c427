package cmd

import (
	"github.com/bgraf/pagetags/cmd/building"
	"github.com/bgraf/pagetags/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render all pages into the build directory",
	RunE:  building.RunBuildCmd,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "O", "", "Build directory")
	buildCmd.Flags().Bool("clean", false, "Empty the build directory first")

	if err := viper.BindPFlag(config.KeyBuildDirectory, buildCmd.Flags().Lookup("output")); err != nil {
		panic(err)
	}
}
