// Package main is the entry point for the gardentv application.
package main

import (
	"github.com/gardentv-cli/gardentv/cmd"
	"github.com/gardentv-cli/gardentv/config"
	"github.com/gardentv-cli/gardentv/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
