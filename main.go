package main

import (
	"github.com/cinemind-cli/cinemind/cmd"
	"github.com/cinemind-cli/cinemind/config"
	"github.com/cinemind-cli/cinemind/internal/cache"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
