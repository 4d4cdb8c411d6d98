// main.go - Einstiegspunkt der diffuse CLI
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/latentscape/diffuse/cmd"
)

func main() {
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(context.Background()))
}
