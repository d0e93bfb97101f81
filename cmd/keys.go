package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cinemind-cli/cinemind/auth"
	"github.com/cinemind-cli/cinemind/color"
	"github.com/cinemind-cli/cinemind/icon"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/cinemind-cli/cinemind/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completionCredentials(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"tmdb", "gemini"}, cobra.ShellCompDirectiveNoFileComp
}

func parseCredential(s string) (auth.Credential, error) {
	switch s {
	case "tmdb", string(auth.TMDB):
		return auth.TMDB, nil
	case "gemini", string(auth.Gemini):
		return auth.Gemini, nil
	default:
		return "", fmt.Errorf("unknown key %q, expected tmdb or gemini", s)
	}
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the TMDB and Gemini API keys stored in the system keyring",
}

func init() {
	keysCmd.AddCommand(keysSetCmd)

	keysSetCmd.Flags().String("tmdb", "", "TMDB API key, prompted for when omitted")
	keysSetCmd.Flags().String("gemini", "", "Gemini API key, prompted for when omitted")
}

var keysSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Validate and store the API keys",
	Long: `Validate the TMDB key against the catalog and store both keys in the system keyring.
The Gemini key is optional. Without it search is disabled, but trending, details and the library still work.`,
	Run: func(cmd *cobra.Command, args []string) {
		tmdbKey := lo.Must(cmd.Flags().GetString("tmdb"))
		geminiKey := lo.Must(cmd.Flags().GetString("gemini"))

		if !cmd.Flags().Changed("tmdb") {
			handleErr(survey.AskOne(&survey.Password{
				Message: auth.TMDB.Label() + ":",
				Help:    "Create one at https://www.themoviedb.org/settings/api",
			}, &tmdbKey, survey.WithValidator(survey.Required)))
		}

		if !cmd.Flags().Changed("gemini") {
			handleErr(survey.AskOne(&survey.Password{
				Message: auth.Gemini.Label() + " (optional):",
				Help:    "Create one at https://aistudio.google.com/apikey",
			}, &geminiKey))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		erase := util.PrintErasable(fmt.Sprintf("%s Validating TMDB key...", icon.Get(icon.Progress)))
		err := auth.SaveKeys(ctx, func(k string) auth.Validator { return tmdb.New(k) }, tmdbKey, geminiKey)
		erase()
		handleErr(err)

		fmt.Printf("%s keys saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	keysCmd.AddCommand(keysShowCmd)
}

var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored keys, masked",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range auth.Credentials {
			value := auth.Get(c)
			if value == "" {
				value = style.Fg(color.Red)("unset")
			} else {
				value = style.Fg(color.Green)(auth.Mask(value))
			}

			fmt.Printf("%s %s\n", style.New().Bold(true).Foreground(color.Purple).Render(c.Label()), value)
		}
	},
}

func init() {
	keysCmd.AddCommand(keysDeleteCmd)

	keysDeleteCmd.Flags().BoolP("all", "a", false, "Delete both keys")
}

var keysDeleteCmd = &cobra.Command{
	Use:               "delete [tmdb|gemini]",
	Short:             "Delete a key from the keyring",
	Aliases:           []string{"remove"},
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionCredentials,
	Run: func(cmd *cobra.Command, args []string) {
		var credentials []auth.Credential

		switch {
		case lo.Must(cmd.Flags().GetBool("all")):
			credentials = auth.Credentials
		case len(args) == 1:
			c, err := parseCredential(args[0])
			handleErr(err)
			credentials = []auth.Credential{c}
		default:
			handleErr(cmd.Help())
			return
		}

		for _, c := range credentials {
			handleErr(auth.Delete(c))
			fmt.Printf("%s deleted %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), c.Label())
		}
	},
}
