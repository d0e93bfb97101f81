package cmd

import (
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/cinemind-cli/cinemind/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("trending", "t", false, "Start from today's trending titles")
	miniCmd.Flags().BoolP("recent", "r", false, "Start from recently viewed titles")
	miniCmd.MarkFlagsMutuallyExclusive("trending", "recent")
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch in a prompt-driven mode without a full screen interface",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		options := mini.Options{
			Trending: lo.Must(cmd.Flags().GetBool("trending")),
			History:  lo.Must(cmd.Flags().GetBool("recent")),
		}
		err := mini.Run(ctx, mustService(), &options)

		if err != nil && err != terminal.InterruptErr {
			handleErr(err)
		}
	},
}
