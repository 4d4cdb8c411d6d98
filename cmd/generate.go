// generate.go - CLI Subcommand fuer die Bildgenerierung
// Hauptfunktionen: newGenerateCmd, generateHandler
package cmd

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/latentscape/diffuse/api"
	"github.com/latentscape/diffuse/progress"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate PROMPT...",
		Short: "Generate an image from a text prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE:  generateHandler,
	}

	cmd.Flags().Int("width", 0, "Image width in pixels")
	cmd.Flags().Int("height", 0, "Image height in pixels")
	cmd.Flags().Int("steps", 0, "Number of denoising steps")
	cmd.Flags().Int64("seed", 0, "Seed for the initial noise (0 picks a random seed)")
	cmd.Flags().Float64("guidance", 0, "Guidance scale (0 disables guidance)")
	cmd.Flags().StringP("output", "o", "", "Output file (default diffuse-SEED.png)")

	return cmd
}

func generateHandler(cmd *cobra.Command, args []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}

	req := &api.GenerateRequest{Prompt: strings.Join(args, " ")}
	req.Width, _ = cmd.Flags().GetInt("width")
	req.Height, _ = cmd.Flags().GetInt("height")
	req.Steps, _ = cmd.Flags().GetInt("steps")
	req.Seed, _ = cmd.Flags().GetInt64("seed")

	if cmd.Flags().Changed("guidance") {
		scale, _ := cmd.Flags().GetFloat64("guidance")
		req.GuidanceScale = &scale
	}

	output, _ := cmd.Flags().GetString("output")

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := progress.NewProgress(os.Stderr)
	defer p.Stop()

	spinner := progress.NewSpinner("")
	p.Add(spinner)

	var bar *progress.StepBar
	var final api.GenerateResponse

	fn := func(resp api.GenerateResponse) error {
		if resp.Total > 0 {
			if bar == nil {
				spinner.Stop()
				bar = progress.NewStepBar("sampling", resp.Total)
				p.Add(bar)
			}
			bar.Set(resp.Completed)
		}
		if resp.Done {
			final = resp
		}
		return nil
	}

	if err := client.Generate(ctx, req, fn); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	p.StopAndClear()

	if final.Image == "" {
		return errors.New("server returned no image")
	}

	data, err := base64.StdEncoding.DecodeString(final.Image)
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	if output == "" {
		output = fmt.Sprintf("diffuse-%d.png", final.Seed)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %s (seed %d)\n", output, final.Seed)
	return nil
}
