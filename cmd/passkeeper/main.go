package main

import (
	"os"

	"github.com/euks-jp/passkeeper/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
