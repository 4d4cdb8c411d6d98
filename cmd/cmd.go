// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/latentscape/diffuse/api"
	"github.com/latentscape/diffuse/envconfig"
	"github.com/latentscape/diffuse/version"
)

// appendEnvDocs adds environment variable documentation to the command.
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// versionHandler prints the server version when one is reachable and the
// client version when it differs.
func versionHandler(cmd *cobra.Command) {
	serverVersion := ""
	if client, err := api.ClientFromEnvironment(); err == nil {
		serverVersion, _ = client.Version(cmd.Context())
	}

	if serverVersion != "" {
		fmt.Printf("diffuse version is %s\n", serverVersion)
	}
	if serverVersion != version.Version {
		fmt.Printf("client version is %s\n", version.Version)
	}
}

// NewCLI builds the root command with all subcommands.
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "diffuse",
		Short:         "Text-to-image diffusion sampler",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				versionHandler(cmd)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	generateCmd := newGenerateCmd()
	serveCmd := newServeCmd()

	envVars := envconfig.AsMap()
	appendEnvDocs(generateCmd, []envconfig.EnvVar{envVars["DIFFUSE_HOST"]})
	appendEnvDocs(serveCmd, []envconfig.EnvVar{
		envVars["DIFFUSE_HOST"],
		envVars["DIFFUSE_ORIGINS"],
		envVars["DIFFUSE_DEBUG"],
	})

	rootCmd.AddCommand(generateCmd, serveCmd)
	return rootCmd
}
