package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/cinemind-cli/cinemind/icon"
	"github.com/cinemind-cli/cinemind/internal/server"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Listen address, server.address by default")
	lo.Must0(viper.BindPFlag(key.ServerAddress, serveCmd.Flags().Lookup("address")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve search, details and the library over a local JSON API",
	Example: `  cinemind serve -a 127.0.0.1:8642
  curl '127.0.0.1:8642/api/v1/search?q=heist+movies+set+in+paris'`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		addr := viper.GetString(key.ServerAddress)
		fmt.Printf("%s listening on %s\n", icon.Get(icon.Success), style.Bold("http://"+addr+"/api/v1"))

		handleErr(server.New(mustService()).ListenAndServe(ctx, addr))
	},
}
