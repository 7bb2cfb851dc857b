package cmd

import (
	"encoding/json"
	"os"

	"github.com/pftv-cli/pftv/inline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:       "schema [kind]",
	Short:     "Print the JSON schema of --json output",
	Long:      "Print the JSON schema of --json output. Kind is one of show, episodes, resolve; show is the default.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: inline.SchemaKinds,
	Run: func(cmd *cobra.Command, args []string) {
		kind := inline.SchemaKinds[0]
		if len(args) > 0 {
			kind = args[0]
		}

		schema, err := inline.Schema(kind)
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
