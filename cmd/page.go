package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/pagetags/cmd/tools"
	"github.com/bgraf/pagetags/tags"
	"github.com/bgraf/pagetags/util/dates"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// pageCmd represents the gen page command
var pageCmd = &cobra.Command{
	Use:   "page [DIRECTORY]",
	Short: "Interactive process to generate a new page",
	Long: `Asks for title, tags and filter of a new page and writes it below the
content directory, or below DIRECTORY relative to it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenPage,
}

func init() {
	genCmd.AddCommand(pageCmd)
}

// pageMeta is the meta block written for new pages.
type pageMeta struct {
	Title  string `yaml:"Title"`
	Date   string `yaml:"Date,omitempty"`
	Tags   string `yaml:"Tags,omitempty"`
	Filter string `yaml:"Filter,omitempty"`
}

func runGenPage(cmd *cobra.Command, args []string) error {
	contentDirectory, err := requireContentDirectory()
	if err != nil {
		return err
	}

	directory := contentDirectory
	if len(args) == 1 {
		directory = filepath.Join(contentDirectory, strings.TrimSpace(args[0]))
	}

	questions := []*survey.Question{
		{
			Name:   "title",
			Prompt: &survey.Input{Message: "Title"},
			Validate: survey.ComposeValidators(
				survey.Required,
				func(ans interface{}) error {
					if normalizeTitle(ans.(string)) == "" {
						return fmt.Errorf("empty normalized title, try letters and digits")
					}
					return nil
				},
			),
		},
		{
			Name: "date",
			Prompt: &survey.Input{
				Message: "Date (empty for none)",
				Default: dates.DateString(time.Now()),
			},
			Validate: func(ans interface{}) error {
				s := strings.TrimSpace(ans.(string))
				if s == "" {
					return nil
				}
				_, err := dates.ParseDate(s)
				return err
			},
		},
		{
			Name:   "tags",
			Prompt: &survey.Input{Message: "Tags (comma separated)"},
		},
		{
			Name:   "filter",
			Prompt: &survey.Input{Message: "Filter (comma separated, lists pages with these tags)"},
		},
	}

	answers := struct {
		Title  string
		Date   string
		Tags   string
		Filter string
	}{}

	err = survey.Ask(questions, &answers)
	if err != nil {
		return interruptOr(err)
	}

	meta := pageMeta{
		Title:  strings.TrimSpace(answers.Title),
		Date:   strings.TrimSpace(answers.Date),
		Tags:   normalizeTagInput(answers.Tags),
		Filter: normalizeTagInput(answers.Filter),
	}

	pageFile := filepath.Join(directory, normalizeTitle(meta.Title)+".md")

	// Review meta block
	if err := writeMetaBlock(os.Stdout, meta); err != nil {
		return err
	}

	isConfirmed := true
	err = survey.AskOne(&survey.Confirm{Message: fmt.Sprintf("Create %s", pageFile), Default: true}, &isConfirmed)
	if err != nil {
		return interruptOr(err)
	}

	if !isConfirmed {
		return nil
	}

	if err := createPage(pageFile, meta); err != nil {
		return err
	}

	log.Info().Str("file", pageFile).Msg("created page")

	openEditor := false
	err = survey.AskOne(&survey.Confirm{Message: "Open in editor", Default: false}, &openEditor)
	if err != nil {
		return interruptOr(err)
	}

	if openEditor {
		return tools.RunEditor(pageFile)
	}

	return nil
}

func createPage(pageFile string, meta pageMeta) error {
	if _, err := os.Stat(pageFile); err == nil {
		return fmt.Errorf("page '%s' already exists", pageFile)
	}

	if err := os.MkdirAll(filepath.Dir(pageFile), 0o755); err != nil {
		return fmt.Errorf("create page directory: %w", err)
	}

	f, err := os.Create(pageFile)
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	defer f.Close()

	if err := writeMetaBlock(f, meta); err != nil {
		return err
	}

	_, err = fmt.Fprintf(f, "\n# %s\n", meta.Title)
	return err
}

func writeMetaBlock(w io.Writer, meta pageMeta) error {
	fmt.Fprintln(w, "---")

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(meta); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	fmt.Fprintln(w, "---")

	return nil
}

// normalizeTagInput trims every tag of a comma separated list and joins them
// again. Empty tokens are kept as they are meaningful to the filter.
func normalizeTagInput(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	return tags.Parse(s).String()
}

func interruptOr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		os.Exit(1)
	}

	return err
}

func normalizeTitle(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range title {
		if unicode.IsSpace(r) {
			if !lastDash {
				b.WriteString("-")
				lastDash = true
			}
		} else if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			lastDash = false
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
