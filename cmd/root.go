// Package cmd implements the command-line interface for pftv.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pftv-cli/pftv/color"
	"github.com/pftv-cli/pftv/constant"
	"github.com/pftv-cli/pftv/icon"
	"github.com/pftv-cli/pftv/key"
	"github.com/pftv-cli/pftv/log"
	"github.com/pftv-cli/pftv/source"
	"github.com/pftv-cli/pftv/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (emoji, nerd, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("date-format", "", "Format for rendered dates, e.g. DD/MM/YYYY")
	lo.Must0(viper.BindPFlag(key.DateFormat, rootCmd.PersistentFlags().Lookup("date-format")))
}

// rootCmd defines the entry point for the pftv application.
var rootCmd = &cobra.Command{
	Use:   constant.Pftv,
	Short: "Read TV show listings from projectfreetv",
	Long: style.New().Bold(true).Foreground(color.HiCyan).Render(constant.Pftv) + "\n" +
		style.Fg(color.HiBlue)(style.Italic("    - Read show pages, seasons and hosted links from the command line")),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// errorMessage turns an error into the line shown to the user.
func errorMessage(err error) string {
	var notFound *source.NotFoundError
	if errors.As(err, &notFound) {
		if notFound.CategoryID != "" {
			return fmt.Sprintf("no season %s for show %s", notFound.CategoryID, notFound.ShowID)
		}
		return fmt.Sprintf("no show with id %s", notFound.ShowID)
	}

	return strings.Trim(err.Error(), " \n")
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.FailColor)(icon.Get(icon.Fail)), errorMessage(err))
		os.Exit(1)
	}
}
