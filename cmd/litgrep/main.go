package main

import (
	"os"

	"github.com/dl/litgrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
