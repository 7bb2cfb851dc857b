package cmd

import (
	"io"

	"github.com/pftv-cli/pftv/inline"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolP("json", "j", false, "Print the show as JSON")
	showCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}

var showCmd = &cobra.Command{
	Use:     "show <show-id>",
	Short:   "Print the title, plot, seasons and next episode of a show",
	Example: "  pftv show the_expanse --json",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := lo.Must(cmd.Flags().GetString("output"))
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		handleErr(withDeps(func(d *deps) error {
			return writeTo(path, func(out io.Writer) error {
				return inline.Show(cmd.Context(), d.options(out, asJson, false), args[0])
			})
		}))
	},
}
