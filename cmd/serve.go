// serve.go - CLI Subcommand fuer den diffuse-Server
// Hauptfunktionen: newServeCmd, serveHandler
package cmd

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"github.com/latentscape/diffuse/envconfig"
	"github.com/latentscape/diffuse/model"
	"github.com/latentscape/diffuse/pipeline"
	"github.com/latentscape/diffuse/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve BACKEND",
		Aliases: []string{"start"},
		Short:   "Start the diffuse server",
		Args:    cobra.ExactArgs(1),
		RunE:    serveHandler,
	}

	return cmd
}

func serveHandler(cmd *cobra.Command, args []string) error {
	models, err := model.New(args[0])
	if err != nil {
		if backends := model.List(); len(backends) > 0 {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(backends, ", "))
		}
		return err
	}

	p, err := pipeline.New(models)
	if err != nil {
		return err
	}

	host := envconfig.Host()
	ln, err := net.Listen("tcp", host.Host)
	if err != nil {
		return err
	}

	return server.Serve(ln, p)
}
