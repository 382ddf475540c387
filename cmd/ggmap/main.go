// Command ggmap renders interpolated surfaces from GeoJSON point data.
//
// Usage:
//
//	ggmap render --input stations.geojson --field pm25 --out pm25.png
//	ggmap ramp --gradient "#313695,#ffffbf,#a50026" --out legend.png
//	ggmap info --input stations.geojson --field pm25
//
// Defaults come from a .env file and GGMAP_* environment variables; flags
// override them.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggmap"
	"github.com/gogpu/ggmap/internal/config"
)

func main() {
	cfg := config.Load(os.Getenv("GGMAP_ENV_FILE"))
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ggmap",
		Short:         "Render inverse distance weighted surfaces from point data",
		Version:       ggmap.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := config.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			ggmap.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Suppress progress output")

	rootCmd.AddCommand(newRenderCmd(cfg))
	rootCmd.AddCommand(newRampCmd(cfg))
	rootCmd.AddCommand(newInfoCmd())
	return rootCmd
}
