package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/cinemind-cli/cinemind/color"
	"github.com/cinemind-cli/cinemind/constant"
	"github.com/cinemind-cli/cinemind/inline"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/cinemind-cli/cinemind/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Output build information as json")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

type buildInfo struct {
	App       string `json:"app"`
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuiltAt   string `json:"built_at"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

var versionTemplate = `{{ accent "▇▇▇" }} {{ accent .App }} {{ faint .Version }}

  {{ faint "Revision" }}    {{ bold .Revision }}
  {{ faint "Built at" }}    {{ bold .BuiltAt }}
  {{ faint "Built by" }}    {{ bold .BuiltBy }}
  {{ faint "Go" }}          {{ bold .GoVersion }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := buildInfo{
			App:       constant.App,
			Version:   constant.Version,
			Revision:  constant.Revision,
			BuiltAt:   strings.TrimSpace(constant.BuiltAt),
			BuiltBy:   constant.BuiltBy,
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(inline.Encode(cmd.OutOrStdout(), inline.JSON, info))
			return
		}

		defer version.Notify()

		t, err := template.New("version").Funcs(template.FuncMap{
			"faint":  style.Faint,
			"bold":   style.Bold,
			"accent": style.Fg(color.Purple),
		}).Parse(versionTemplate)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), info))
	},
}
