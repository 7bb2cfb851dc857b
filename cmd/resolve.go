package cmd

import (
	"os"

	"github.com/pftv-cli/pftv/inline"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <embedded-url>",
	Short: "Turn a hosted player link into a direct media URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		handleErr(withDeps(func(d *deps) error {
			return inline.Resolve(cmd.Context(), d.options(os.Stdout, asJson, true), args[0])
		}))
	},
}
