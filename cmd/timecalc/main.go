package main

import (
	"os"

	"timecalc/internal/cli"
)

func main() {
	// Exit status is always 0; errors are printed with the output.
	cli.Execute(os.Args[1:], os.Stdout)
}
