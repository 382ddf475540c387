package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggmap/interp"
	"github.com/gogpu/ggmap/internal/config"
)

func newRampCmd(cfg *config.Config) *cobra.Command {
	var (
		out    string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "ramp",
		Short: "Write the color ramp as a legend strip",
		RunE: func(cmd *cobra.Command, args []string) error {
			stops := interp.DefaultGradient()
			if cfg.Gradient != "" {
				var err error
				if stops, err = interp.ParseGradient(cfg.Gradient); err != nil {
					return err
				}
			}
			ramp, err := interp.NewColorRamp(stops)
			if err != nil {
				return err
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("invalid legend size %dx%d", width, height)
			}
			if err := savePNG(out, ramp.Image(width, height)); err != nil {
				return fmt.Errorf("save %s: %w", out, err)
			}
			if !cfg.Quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d stops)\n", out, len(stops))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.Gradient, "gradient", cfg.Gradient, "Color stops (default: 11-class RdYlGn)")
	cmd.Flags().StringVarP(&out, "out", "o", "ramp.png", "Output PNG file")
	cmd.Flags().IntVar(&width, "width", interp.RampSize, "Legend width in pixels")
	cmd.Flags().IntVar(&height, "height", 16, "Legend height in pixels")
	return cmd
}
