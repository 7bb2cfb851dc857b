package cmd

import (
	"os"
	"strings"
	"text/template"

	"github.com/pftv-cli/pftv/color"
	"github.com/pftv-cli/pftv/style"
	"github.com/pftv-cli/pftv/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version string")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
	"yellow":  style.Fg(color.Yellow),
	"repeat":  strings.Repeat,
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Short }}{{ if .Modified }} {{ yellow "(modified)" }}{{ end }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Go" }}              {{ bold .GoVersion }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Current()

		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(info.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}
