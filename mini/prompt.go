package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cinemind-cli/cinemind/icon"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/query"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/cinemind-cli/cinemind/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// bind is a fixed menu entry shown after the selectable items.
type bind struct {
	label string
}

func (b *bind) String() string {
	return b.label
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

var (
	back     = &bind{"← Back"}
	search   = &bind{"Search"}
	trending = &bind{"Trending"}
	recent   = &bind{"Recently viewed"}
	quit     = &bind{"Quit"}
)

var pageSize = 15

func title(text string) {
	fmt.Println(style.Title(text))
}

func fail(text string) {
	fmt.Println(style.Fg(style.ErrorColor)(icon.Get(icon.Fail) + " " + text))
}

func success(text string) {
	fmt.Println(style.Fg(style.SuccessColor)(icon.Get(icon.Success) + " " + text))
}

func progress(text string) (erase func()) {
	return util.PrintErasable(style.Faint(icon.Get(icon.Progress) + " " + text))
}

// menu asks to pick one of labels or one of binds. Exactly one of the
// returned bind and index is meaningful: index is -1 when a bind was chosen.
func menu(labels []string, binds ...*bind) (*bind, int, error) {
	options := make([]string, 0, len(labels)+len(binds))
	for _, l := range labels {
		options = append(options, util.Ellipsis(l, truncateAt))
	}
	options = append(options, lo.Map(binds, func(b *bind, _ int) string {
		return style.Faint(b.String())
	})...)

	prompt := &survey.Select{
		Message:  ">",
		Options:  options,
		PageSize: pageSize,
	}

	var index int
	if err := survey.AskOne(prompt, &index); err != nil {
		return nil, -1, err
	}

	if index >= len(labels) {
		return binds[index-len(labels)], -1, nil
	}

	return nil, index, nil
}

// getInput reads a non-empty line, offering remembered queries as completions.
func getInput(message string) (string, error) {
	prompt := &survey.Input{
		Message: message,
	}

	if viper.GetBool(key.SearchShowQuerySuggestions) {
		prompt.Suggest = query.SuggestMany
	}

	var value string
	err := survey.AskOne(prompt, &value, survey.WithValidator(survey.Required))
	return value, err
}
