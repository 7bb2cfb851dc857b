// Package main is the entry point for pftv.
package main

import (
	"github.com/pftv-cli/pftv/cmd"
	"github.com/pftv-cli/pftv/config"
	"github.com/pftv-cli/pftv/internal/cache"
	"github.com/pftv-cli/pftv/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage()

	cmd.Execute()
}
