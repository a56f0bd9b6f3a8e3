package main

import (
	"os"

	"github.com/blockforge/blockforge/internal/cli"
	"github.com/blockforge/blockforge/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
