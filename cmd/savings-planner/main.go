package main

import (
	"os"

	"github.com/rpgo/savings-planner/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
