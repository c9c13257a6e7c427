package building

import (
	"fmt"

	"github.com/bgraf/pagetags/building"
	"github.com/bgraf/pagetags/config"
	"github.com/bgraf/pagetags/filesystem"
	"github.com/bgraf/pagetags/plugin/builtin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func RunBuildCmd(cmd *cobra.Command, args []string) error {
	if !config.HasContentDirectory() {
		return fmt.Errorf("no content directory configured")
	}

	if !config.HasBuildDirectory() {
		return fmt.Errorf("no build directory configured")
	}

	isCleanBuild, err := cmd.Flags().GetBool("clean")
	if err != nil {
		return err
	}

	opts := building.Options{
		Clean:            isCleanBuild,
		ContentDirectory: filesystem.Abs(config.ContentDirectory()),
		BuildDirectory:   filesystem.Abs(config.BuildDirectory()),
		Locale:           config.Locale(),
	}

	log.Info().Str("content", opts.ContentDirectory).Msg("content directory")
	log.Info().Str("build", opts.BuildDirectory).Msg("build directory")

	host := builtin.NewHost()

	result, err := building.Build(cmd.Context(), host, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages and %d tags\n", result.Pages, result.Tags)

	return nil
}
