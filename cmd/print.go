package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the saved content to stdout",
	Args:  cobra.NoArgs,
	RunE:  runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, _ []string) error {
	cleanup, err := setupLogging("clipedit-print")
	if err != nil {
		return err
	}
	defer cleanup()

	env, err := openEnvironment(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer env.Close()

	_, err = fmt.Fprint(cmd.OutOrStdout(), env.session.Text())
	return err
}
