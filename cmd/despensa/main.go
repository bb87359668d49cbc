package main

import (
	"os"

	"github.com/jhoicas/despensa-api/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
