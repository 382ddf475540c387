package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ggmap/feature"
)

// datasetInfo summarizes a feature class for one field.
type datasetInfo struct {
	Features int     `json:"features"`
	Geometry string  `json:"geometry"`
	Values   int     `json:"values"`
	Missing  int     `json:"missing"`
	Invalid  int     `json:"invalid"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
}

func summarize(fc *feature.FeatureClass, field string) datasetInfo {
	info := datasetInfo{
		Features: fc.Len(),
		Geometry: fc.Type.String(),
		Min:      math.Inf(1),
		Max:      math.Inf(-1),
	}
	var sum float64
	for _, f := range fc.Features {
		v, ok, err := f.Number(field)
		switch {
		case err != nil:
			info.Invalid++
		case !ok:
			info.Missing++
		default:
			info.Values++
			sum += v
			info.Min = math.Min(info.Min, v)
			info.Max = math.Max(info.Max, v)
		}
	}
	if info.Values == 0 {
		info.Min, info.Max = 0, 0
		return info
	}
	info.Mean = sum / float64(info.Values)
	return info
}

func newInfoCmd() *cobra.Command {
	var (
		input      string
		field      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize a GeoJSON point dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadFeatures(input)
			if err != nil {
				return err
			}
			info := summarize(fc, field)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			p := message.NewPrinter(language.English)
			out := cmd.OutOrStdout()
			p.Fprintf(out, "Features: %d (%s)\n", info.Features, info.Geometry)
			p.Fprintf(out, "Field %q: %d values, %d missing, %d invalid\n", field, info.Values, info.Missing, info.Invalid)
			if info.Values > 0 {
				p.Fprintf(out, "Range: %.4g .. %.4g (mean %.4g)\n", info.Min, info.Max, info.Mean)
			} else {
				fmt.Fprintln(out, "Range: none")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "GeoJSON FeatureCollection")
	cmd.Flags().StringVarP(&field, "field", "f", "", "Numeric property to summarize")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}
