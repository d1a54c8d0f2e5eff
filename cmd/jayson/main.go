// Command jayson validates, infers, templates, types and transforms JSON
// documents. Run "jayson --help" for the command list.
package main

import (
	"os"

	"github.com/reoring/jayson/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
