package cmd

import (
	"errors"
	"fmt"

	"github.com/cinemind-cli/cinemind/color"
	"github.com/cinemind-cli/cinemind/icon"
	"github.com/cinemind-cli/cinemind/inline"
	"github.com/cinemind-cli/cinemind/library"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completionLists(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(library.Lists, func(l library.List, _ int) string {
		return string(l)
	}), cobra.ShellCompDirectiveNoFileComp
}

func listArg(args []string) library.List {
	if len(args) == 0 {
		return library.Favorites
	}

	list, err := library.ParseList(args[0])
	handleErr(err)
	return list
}

// itemFlags registers --type and --id for commands that name one title.
func itemFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "T", string(tmdb.Movie), "Media type, movie or tv")
	cmd.Flags().IntP("id", "i", 0, "TMDB id of the title")
	lo.Must0(cmd.MarkFlagRequired("id"))
}

func itemOf(cmd *cobra.Command) *tmdb.MediaItem {
	mediaType, err := tmdb.ParseMediaType(lo.Must(cmd.Flags().GetString("type")))
	handleErr(err)
	if mediaType == tmdb.Person {
		handleErr(library.ErrNotListable)
	}

	return &tmdb.MediaItem{ID: lo.Must(cmd.Flags().GetInt("id")), MediaType: mediaType}
}

func init() {
	rootCmd.AddCommand(libraryCmd)
}

var libraryCmd = &cobra.Command{
	Use:     "library",
	Short:   "Manage favorites and the watchlist",
	Aliases: []string{"lib"},
}

func init() {
	libraryCmd.AddCommand(libraryListCmd)

	libraryListCmd.Flags().StringP("filter", "f", string(library.All), "Show only all, movie, tv or animation")
	lo.Must0(libraryListCmd.RegisterFlagCompletionFunc("filter", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(library.All), string(library.Movies), string(library.Shows), string(library.Animation)}, cobra.ShellCompDirectiveNoFileComp
	}))
	addOutputFlags(libraryListCmd, inline.Plain)
}

var libraryListCmd = &cobra.Command{
	Use:               "list [favorites|watchlist]",
	Short:             "Print a list, favorites by default",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionLists,
	Run: func(cmd *cobra.Command, args []string) {
		list := listArg(args)

		filter, err := library.ParseFilter(lo.Must(cmd.Flags().GetString("filter")))
		handleErr(err)

		items, err := library.Get(list)
		handleErr(err)

		writeValue(cmd, library.Apply(items, filter))
	},
}

func init() {
	libraryCmd.AddCommand(libraryToggleCmd)
	itemFlags(libraryToggleCmd)
}

var libraryToggleCmd = &cobra.Command{
	Use:               "toggle [favorites|watchlist]",
	Short:             "Add a title to a list, or remove it when already there",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionLists,
	Run: func(cmd *cobra.Command, args []string) {
		list := listArg(args)
		item := itemOf(cmd)

		// the stored entry carries the title, so resolve it first
		if !library.Contains(list, item) {
			ctx, cancel := commandContext()
			defer cancel()

			detail, err := mustService().Details(ctx, item)
			handleErr(err)
			item = &detail.MediaItem
		}

		added, err := library.Toggle(list, item)
		handleErr(err)

		verb := "removed from"
		if added {
			verb = "added to"
		}
		fmt.Printf(
			"%s %s %s %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(inline.Line(item)),
			verb,
			list.Title(),
		)
	},
}

func init() {
	libraryCmd.AddCommand(libraryRemoveCmd)
	itemFlags(libraryRemoveCmd)
}

var libraryRemoveCmd = &cobra.Command{
	Use:               "remove [favorites|watchlist]",
	Short:             "Remove a title from a list",
	Aliases:           []string{"rm"},
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionLists,
	Run: func(cmd *cobra.Command, args []string) {
		list := listArg(args)
		item := itemOf(cmd)

		if !library.Contains(list, item) {
			handleErr(errors.New("not in " + list.Title()))
		}

		handleErr(library.Remove(list, item))
		fmt.Printf("%s removed from %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), list.Title())
	},
}

func init() {
	libraryCmd.AddCommand(libraryClearCmd)

	libraryClearCmd.Flags().BoolP("all", "a", false, "Clear both lists")
}

var libraryClearCmd = &cobra.Command{
	Use:               "clear [favorites|watchlist]",
	Short:             "Remove every title from a list",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionLists,
	Run: func(cmd *cobra.Command, args []string) {
		lists := []library.List{listArg(args)}
		if lo.Must(cmd.Flags().GetBool("all")) {
			lists = library.Lists
		}

		for _, list := range lists {
			handleErr(library.Clear(list))
			fmt.Printf("%s cleared %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), list.Title())
		}
	},
}
