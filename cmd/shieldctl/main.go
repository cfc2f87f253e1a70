package main

import (
	"os"

	"github.com/siteshield/siteshield-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
