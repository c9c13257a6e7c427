package cmd

import (
	"fmt"
	"io"

	"github.com/bgraf/pagetags/data"
	"github.com/bgraf/pagetags/plugin/builtin"
	"github.com/bgraf/pagetags/plugin/tagfilter"
	"github.com/bgraf/pagetags/tags"
	"github.com/spf13/cobra"
)

// tagsCmd represents the tags command
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags, or the pages matching a filter",
	Long: `Without flags every distinct tag used by any page is printed, one per line.
With --filter the pages having at least one of the given comma separated
tags are printed instead.`,
	RunE: runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().StringP("filter", "f", "", "Comma separated tags to filter pages by")
}

func runTags(cmd *cobra.Command, args []string) error {
	contentDirectory, err := requireContentDirectory()
	if err != nil {
		return err
	}

	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		return err
	}

	store, err := builtin.NewHost().NewStore(contentDirectory)
	if err != nil {
		return err
	}

	store.OrderPagesByDate()

	if filter != "" {
		return printFilteredPages(cmd.OutOrStdout(), store.VisiblePages(), tags.Parse(filter))
	}

	return printTags(cmd.OutOrStdout(), store.VisiblePages())
}

func printTags(w io.Writer, pages []*data.Page) error {
	for _, tag := range tagfilter.CollectAllTags(pages) {
		n := len(tagfilter.FilterByTags(pages, tags.List{tag}))
		if _, err := fmt.Fprintf(w, "%s\t%d\n", tag, n); err != nil {
			return err
		}
	}

	return nil
}

func printFilteredPages(w io.Writer, pages []*data.Page, filter tags.List) error {
	for _, p := range tagfilter.FilterByTags(pages, filter) {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Title, tagfilter.PageTags(p)); err != nil {
			return err
		}
	}

	return nil
}
