package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/clipedit/internal/search"
)

var (
	replaceFind          string
	replaceWith          string
	replaceRegex         bool
	replaceCaseSensitive bool
	replacePrint         bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace",
	Short: "Replace every match in the saved content",
	Long: `Replace every match of --find in the saved content with --with.

The replacement may contain \n, \t and \r. With --regex it may also refer to
capture groups as $1, $<name> or $&.`,
	Example: `  clipedit replace --find foo --with bar
  clipedit replace --regex --find '(\d+)/(\d+)' --with '$2/$1'`,
	Args: cobra.NoArgs,
	RunE: runReplace,
}

func init() {
	rootCmd.AddCommand(replaceCmd)

	replaceCmd.Flags().StringVarP(&replaceFind, "find", "f", "", "text or pattern to find (required)")
	replaceCmd.Flags().StringVarP(&replaceWith, "with", "w", "", "replacement text")
	replaceCmd.Flags().BoolVarP(&replaceRegex, "regex", "r", false, "treat --find as a regular expression")
	replaceCmd.Flags().BoolVarP(&replaceCaseSensitive, "case-sensitive", "s", false, "match case exactly")
	replaceCmd.Flags().BoolVarP(&replacePrint, "print", "p", false, "print the content after replacing")
	_ = replaceCmd.MarkFlagRequired("find")
}

func runReplace(cmd *cobra.Command, _ []string) error {
	cleanup, err := setupLogging("clipedit-replace")
	if err != nil {
		return err
	}
	defer cleanup()

	env, err := openEnvironment(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	res := env.session.ReplaceAll(cmd.Context(), search.ReplaceRequest{
		Query: search.Query{
			Term:          replaceFind,
			CaseSensitive: replaceCaseSensitive,
			UseRegex:      replaceRegex,
		},
		Replacement: replaceWith,
	})

	switch res.Outcome {
	case search.InvalidPattern:
		_, perr := search.Compile(search.Query{Term: replaceFind, UseRegex: true})
		return fmt.Errorf("replace: %w", perr)
	case search.NoOp:
		return errors.New("replace: --find must not be empty")
	}

	for _, notice := range env.notices.Drain() {
		fmt.Fprintln(cmd.ErrOrStderr(), notice)
	}
	if replacePrint {
		_, err = fmt.Fprint(cmd.OutOrStdout(), env.session.Text())
	}
	return err
}
