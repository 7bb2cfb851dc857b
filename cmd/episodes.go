package cmd

import (
	"io"

	"github.com/pftv-cli/pftv/inline"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(episodesCmd)

	episodesCmd.Flags().BoolP("json", "j", false, "Print the season as JSON")
	episodesCmd.Flags().BoolP("resolve", "r", false, "Resolve every hosted link to its direct URL")
	episodesCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}

var episodesCmd = &cobra.Command{
	Use:     "episodes <show-id> <category-id>",
	Aliases: []string{"season"},
	Short:   "Print the episodes of one season with their hosted links",
	Example: "  pftv episodes the_expanse season_1.html --resolve",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		path := lo.Must(cmd.Flags().GetString("output"))
		asJson := lo.Must(cmd.Flags().GetBool("json"))
		resolve := lo.Must(cmd.Flags().GetBool("resolve"))

		handleErr(withDeps(func(d *deps) error {
			return writeTo(path, func(out io.Writer) error {
				return inline.Episodes(cmd.Context(), d.options(out, asJson, resolve), args[0], args[1])
			})
		}))
	},
}
