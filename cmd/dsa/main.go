package main

import (
	"os"

	"github.com/askiada/go-dsa/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
