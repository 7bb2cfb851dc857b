package cmd

import (
	"os"

	"github.com/pftv-cli/pftv/color"
	"github.com/pftv-cli/pftv/style"
	"github.com/pftv-cli/pftv/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a directory pftv owns. Hidden ones are only printed when asked for by flag.
type location struct {
	flag, short string
	name        string
	path        func() string
	hidden      bool
}

var locations = []location{
	{flag: "config", short: "c", name: "Config", path: where.Config},
	{flag: "resolvers", short: "r", name: "Resolvers", path: where.Resolvers},
	{flag: "logs", short: "l", name: "Logs", path: where.Logs},
	{flag: "cache", name: "Cache", path: where.Cache, hidden: true},
	{flag: "pages", name: "Cached pages", path: where.Pages, hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, l.name+" path")
		if l.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string { return l.flag })...)
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths where pftv keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(locations, func(l location, _ int) bool { return l.hidden })

		for i, l := range visible {
			cmd.Printf("%s %s\n", header(l.name+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
