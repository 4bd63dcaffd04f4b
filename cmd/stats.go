package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show character, line and width counts of the saved content",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print as JSON")
}

func runStats(cmd *cobra.Command, _ []string) error {
	cleanup, err := setupLogging("clipedit-stats")
	if err != nil {
		return err
	}
	defer cleanup()

	env, err := openEnvironment(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	st := env.session.Stats()
	out := cmd.OutOrStdout()
	if statsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}
	_, err = fmt.Fprintln(out, st.String())
	return err
}
