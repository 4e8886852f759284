package main

import (
	"fmt"
	"os"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hermes-rebrand: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
