package cmd

import (
	"os"
	"os/user"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pftv-cli/pftv/color"
	"github.com/pftv-cli/pftv/icon"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/resolver"
	"github.com/pftv-cli/pftv/resolver/custom"
	"github.com/pftv-cli/pftv/style"
	"github.com/pftv-cli/pftv/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(resolversCmd)
}

var resolversCmd = &cobra.Command{
	Use:   "resolvers",
	Short: "Manage link resolvers",
}

func init() {
	resolversCmd.AddCommand(resolversListCmd)

	resolversListCmd.Flags().StringP("filter", "f", "", "Only list domains that fuzzy match this query")
	resolversListCmd.SetOut(os.Stdout)
}

var resolversListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the domains that links can be resolved for",
	Run: func(cmd *cobra.Command, args []string) {
		d := newDeps()
		defer d.close()

		scripts := lo.SliceToMap(d.scripts, func(s *custom.LuaResolver) (string, string) {
			return s.Domain(), s.Path()
		})

		domains := d.registry.Domains()
		if q := lo.Must(cmd.Flags().GetString("filter")); q != "" {
			domains = lo.Filter(domains, func(domain string, _ int) bool {
				return fuzzy.MatchNormalizedFold(q, domain)
			})
		}

		for _, domain := range domains {
			if path, ok := scripts[domain]; ok {
				cmd.Printf("%s %s %s\n", style.Fg(color.Purple)(icon.Get(icon.Lua)), style.Bold(domain), style.Faint(path))
				continue
			}
			cmd.Printf("%s %s %s\n", style.Fg(color.Cyan)(icon.Get(icon.Link)), style.Bold(domain), style.Faint("builtin"))
		}
	},
}

func init() {
	resolversCmd.AddCommand(resolversNewCmd)

	resolversNewCmd.Flags().StringP("domain", "d", "", "Host the resolver handles, e.g. vidhost.net")
	lo.Must0(resolversNewCmd.MarkFlagRequired("domain"))
}

var resolversNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a Lua resolver for a video host",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		domain := lo.Must(cmd.Flags().GetString("domain"))
		if d, err := resolver.Domain("https://" + domain); err == nil && d != "" {
			domain = d
		}

		path, err := custom.Scaffold(where.Resolvers(), domain, author)
		handleErr(err)

		if !viper.GetBool(key.ResolversCustom) {
			cmd.Printf("%s resolvers.custom is off, enable it to load this script\n", icon.Get(icon.Progress))
		}
		cmd.Println(path)
	},
}
