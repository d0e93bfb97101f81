package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/inline"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/query"
	"github.com/cinemind-cli/cinemind/tmdb"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionFormats(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(inline.Formats, func(f inline.Format, _ int) string {
		return string(f)
	}), cobra.ShellCompDirectiveNoFileComp
}

// addOutputFlags registers the format and output flags shared by inline commands.
func addOutputFlags(cmd *cobra.Command, format inline.Format) {
	cmd.Flags().StringP("format", "F", string(format), "Output format (json, yaml, plain)")
	cmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	lo.Must0(cmd.RegisterFlagCompletionFunc("format", completionFormats))
}

// outputOf returns the writer and format selected by the flags. The writer
// must be closed when it is a file.
func outputOf(cmd *cobra.Command) (io.Writer, inline.Format, func()) {
	format, err := inline.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
	handleErr(err)

	path := lo.Must(cmd.Flags().GetString("output"))
	if path == "" {
		return os.Stdout, format, func() {}
	}

	file, err := filesystem.API().Create(path)
	handleErr(err)
	return file, format, func() { _ = file.Close() }
}

// writeValue writes v in the selected format, items one per line in plain mode.
func writeValue(cmd *cobra.Command, v any) {
	out, format, done := outputOf(cmd)
	defer done()

	if format != inline.Plain {
		handleErr(inline.Encode(out, format, v))
		return
	}

	switch value := v.(type) {
	case []*tmdb.MediaItem:
		handleErr(inline.WriteItems(out, value))
	case *tmdb.MediaDetail:
		handleErr(inline.WriteDetail(out, value))
	default:
		handleErr(inline.Encode(out, inline.YAML, v))
	}
}

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Describe what to watch")
	inlineCmd.Flags().BoolP("trending", "t", false, "Use today's trending titles instead of a query")
	inlineCmd.Flags().StringP("pick", "p", "", "Pick one result: first, last, an index or exact:<title>")
	inlineCmd.Flags().BoolP("details", "d", false, "Include the details of the picked title")
	inlineCmd.MarkFlagsMutuallyExclusive("query", "trending")
	addOutputFlags(inlineCmd, inline.JSON)

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Search without the interface and print the result",
	Long: `Run one search and print the result for scripts.

Pickers:
  first        first result
  last         last result
  [number]     result at index (starting from 0)
  exact:[t]    first result titled t, ignoring case

Details are fetched only for a picked movie or show.`,
	Example: `  cinemind inline -q "slow burn sci-fi from the 70s" -F plain
  cinemind inline -t -p first -d -F yaml`,
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("query") && !cmd.Flags().Changed("trending") {
			handleErr(inline.ErrNoInput)
		}

		if cmd.Flags().Changed("details") && !cmd.Flags().Changed("pick") {
			handleErr(errors.New("--details requires --pick"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		out, format, done := outputOf(cmd)
		defer done()

		picker := mo.None[inline.Picker]()
		if description := lo.Must(cmd.Flags().GetString("pick")); description != "" {
			fn, err := inline.ParsePicker(description)
			handleErr(err)
			picker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:      out,
			Query:    lo.Must(cmd.Flags().GetString("query")),
			Trending: lo.Must(cmd.Flags().GetBool("trending")),
			Picker:   picker,
			Details:  lo.Must(cmd.Flags().GetBool("details")),
			Format:   format,
		}

		handleErr(inline.Run(ctx, mustService(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineDetailsCmd)

	inlineDetailsCmd.Flags().StringP("type", "T", string(tmdb.Movie), "Media type, movie or tv")
	inlineDetailsCmd.Flags().IntP("id", "i", 0, "TMDB id of the title")
	lo.Must0(inlineDetailsCmd.MarkFlagRequired("id"))
	lo.Must0(inlineDetailsCmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(tmdb.Movie), string(tmdb.TV)}, cobra.ShellCompDirectiveNoFileComp
	}))
	addOutputFlags(inlineDetailsCmd, inline.JSON)
}

var inlineDetailsCmd = &cobra.Command{
	Use:   "details",
	Short: "Print the details of a movie or show",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		mediaType, err := tmdb.ParseMediaType(lo.Must(cmd.Flags().GetString("type")))
		handleErr(err)
		if mediaType == tmdb.Person {
			handleErr(errors.New(`use "inline person" for people`))
		}

		item := &tmdb.MediaItem{ID: lo.Must(cmd.Flags().GetInt("id")), MediaType: mediaType}
		detail, err := mustService().Details(ctx, item)
		handleErr(err)

		writeValue(cmd, detail)
	},
}

func init() {
	inlineCmd.AddCommand(inlinePersonCmd)

	inlinePersonCmd.Flags().IntP("id", "i", 0, "TMDB id of the person")
	lo.Must0(inlinePersonCmd.MarkFlagRequired("id"))
	addOutputFlags(inlinePersonCmd, inline.JSON)
}

var inlinePersonCmd = &cobra.Command{
	Use:   "person",
	Short: "Print a person with the titles they are known for",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		person, err := mustService().Person(ctx, lo.Must(cmd.Flags().GetInt("id")))
		handleErr(err)

		if format, _ := inline.ParseFormat(lo.Must(cmd.Flags().GetString("format"))); format == inline.Plain {
			writeValue(cmd, person.KnownFor())
			return
		}

		writeValue(cmd, person)
	},
}

func init() {
	inlineCmd.AddCommand(inlineEpisodesCmd)

	inlineEpisodesCmd.Flags().IntP("id", "i", 0, "TMDB id of the show")
	inlineEpisodesCmd.Flags().IntP("season", "s", 1, "Season number")
	lo.Must0(inlineEpisodesCmd.MarkFlagRequired("id"))
	addOutputFlags(inlineEpisodesCmd, inline.JSON)
}

var inlineEpisodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "Print the episodes of a season",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		episodes, err := mustService().Season(
			ctx,
			lo.Must(cmd.Flags().GetInt("id")),
			lo.Must(cmd.Flags().GetInt("season")),
		)
		handleErr(err)

		writeValue(cmd, episodes)
	},
}

func init() {
	inlineCmd.AddCommand(inlineRankCmd)

	inlineRankCmd.Flags().StringP("show", "s", "", "Name of the show")
	inlineRankCmd.Flags().IntP("limit", "n", 0, "Number of episodes, search.ranking_limit by default")
	lo.Must0(inlineRankCmd.MarkFlagRequired("show"))
	addOutputFlags(inlineRankCmd, inline.JSON)
}

var inlineRankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print the highest rated episodes of a show",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		if limit <= 0 {
			limit = viper.GetInt(key.SearchRankingLimit)
		}

		episodes, err := mustService().RankEpisodes(ctx, lo.Must(cmd.Flags().GetString("show")), limit)
		handleErr(err)

		writeValue(cmd, episodes)
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("filter", "f", false, "Schema of the analyzed query filter instead of the output")
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		target := "output"
		if lo.Must(cmd.Flags().GetBool("filter")) {
			target = "filter"
		}

		schema, err := inline.Schema(target)
		handleErr(err)
		handleErr(inline.Encode(os.Stdout, inline.JSON, schema))
	},
}
