// Package cmd implements the command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cinemind-cli/cinemind/auth"
	"github.com/cinemind-cli/cinemind/constant"
	"github.com/cinemind-cli/cinemind/icon"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/tui"
	"github.com/cinemind-cli/cinemind/util"
	"github.com/cinemind-cli/cinemind/version"
	"github.com/cinemind-cli/cinemind/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant (emoji, kaomoji, plain, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember titles whose details were opened")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnView, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.Flags().BoolP("library", "l", false, "Start from the favorites and watchlist")
	rootCmd.Flags().BoolP("recent", "r", false, "Start from recently viewed titles")
	rootCmd.MarkFlagsMutuallyExclusive("library", "recent")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Find movies and shows by describing them",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.AccentColor).Render("    - "+constant.Tagline),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Connect: func(progress func(string)) mo.Option[tui.Service] {
				service, ok := newService(progress).Get()
				if !ok {
					return mo.None[tui.Service]()
				}
				return mo.Some[tui.Service](service)
			},
			Validator: func(tmdbKey string) auth.Validator {
				return tmdb.New(tmdbKey)
			},
			Library: lo.Must(cmd.Flags().GetBool("library")),
			History: lo.Must(cmd.Flags().GetBool("recent")),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute runs the root command.
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

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
