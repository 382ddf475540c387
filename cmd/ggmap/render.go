package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggmap"
	"github.com/gogpu/ggmap/canvas"
	"github.com/gogpu/ggmap/feature"
	"github.com/gogpu/ggmap/interp"
	"github.com/gogpu/ggmap/internal/config"
	"github.com/gogpu/ggmap/projection"
)

// target is a drawing surface the render command can clear and save.
type target struct {
	ggmap.Canvas
	clear func(c color.Color)
	save  func(path string) error
	close func()
}

func newTarget(backend string, width, height int) (*target, error) {
	switch backend {
	case "", "image":
		cv := canvas.NewImageCanvas(width, height)
		return &target{
			Canvas: cv,
			clear:  cv.Clear,
			save:   cv.SavePNG,
			close:  func() {},
		}, nil
	case "gg":
		dc := gg.NewContext(width, height)
		cv, err := canvas.NewGGCanvas(dc)
		if err != nil {
			return nil, err
		}
		return &target{
			Canvas: cv,
			clear: func(c color.Color) {
				dc.SetColor(c)
				dc.DrawRectangle(0, 0, float64(width), float64(height))
				_ = dc.Fill()
			},
			save:  dc.SavePNG,
			close: func() { _ = dc.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unknown backend %q (want image or gg)", backend)
}

// drawMarkers outlines every sample position with a small circle.
func drawMarkers(c ggmap.Canvas, samples []interp.Sample, radius float64) error {
	const segments = 16
	c.Push()
	defer c.Pop()
	c.SetTransform(ggmap.Identity())
	c.SetStrokeColor(color.NRGBA{A: 200})
	c.SetLineWidth(1)
	for _, s := range samples {
		c.BeginPath()
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			x, y := s.X+radius*math.Cos(a), s.Y+radius*math.Sin(a)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		if err := c.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

type renderOptions struct {
	input      string
	field      string
	center     string
	background string
	honey      bool
	markers    bool
}

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an IDW surface to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			fc, err := loadFeatures(opts.input)
			if err != nil {
				return err
			}
			proj, ok := projection.ByName(cfg.Projection)
			if !ok {
				return fmt.Errorf("unknown projection %q", cfg.Projection)
			}
			idw, err := buildRenderer(cfg, opts.honey)
			if err != nil {
				return err
			}
			if err := idw.Generate(fc, feature.Field{Name: opts.field, Type: feature.FieldNumber}); err != nil {
				return err
			}

			view, zoom, err := resolveView(cmd, cfg, opts, fc, proj)
			if err != nil {
				return err
			}

			tg, err := newTarget(cfg.Backend, cfg.Width, cfg.Height)
			if err != nil {
				return err
			}
			defer tg.close()

			if opts.background != "" {
				bg, err := ggmap.ParseHex(opts.background)
				if err != nil {
					return err
				}
				tg.clear(bg)
			}

			var s *spinner.Spinner
			if !cfg.Quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Suffix = fmt.Sprintf(" Rendering %dx%d surface from %d features...", cfg.Width, cfg.Height, fc.Len())
				s.Start()
			}

			start := time.Now()
			tg.SetTransform(view.Matrix())
			err = idw.Draw(tg, proj, view.Extent(), zoom)
			if err == nil && opts.markers {
				err = drawMarkers(tg, idw.Samples(proj, view.Matrix()), 3)
			}

			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}

			if err := tg.save(cfg.Output); err != nil {
				return fmt.Errorf("save %s: %w", cfg.Output, err)
			}
			if !cfg.Quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%dx%d, zoom %.2f) in %s\n",
					cfg.Output, cfg.Width, cfg.Height, zoom, time.Since(start).Round(time.Millisecond))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "GeoJSON FeatureCollection of points")
	f.StringVarP(&opts.field, "field", "f", "", "Numeric property to interpolate")
	f.StringVarP(&cfg.Output, "out", "o", cfg.Output, "Output PNG file")
	f.IntVar(&cfg.Width, "width", cfg.Width, "Surface width in pixels")
	f.IntVar(&cfg.Height, "height", cfg.Height, "Surface height in pixels")
	f.StringVar(&opts.center, "center", "", "View center as lng,lat (default: data center)")
	f.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "Zoom level (default: fit data when no center is given)")
	f.Float64Var(&cfg.Resolution, "resolution", cfg.Resolution, "Grid cell size in pixels")
	f.BoolVar(&opts.honey, "honey", false, "Render hexagonal cells instead of a grid")
	f.Float64Var(&cfg.HoneySide, "honey-side", cfg.HoneySide, "Hexagon side length in pixels")
	f.Float64Var(&cfg.Power, "power", cfg.Power, "Distance decay exponent")
	f.Float64Var(&cfg.Radius, "radius", cfg.Radius, "Influence radius in pixels (0 = unbounded)")
	f.Float64Var(&cfg.Thin, "thin", cfg.Thin, "Drop samples closer than this many pixels (0 = off)")
	f.StringVar(&cfg.Gradient, "gradient", cfg.Gradient, "Color stops, e.g. \"0:#006837,0.5:#ffffbf,1:#a50026\"")
	f.StringVar(&cfg.Resample, "resample", cfg.Resample, "Grid resampling: bilinear, nearest, catmullrom")
	f.StringVar(&cfg.Projection, "projection", cfg.Projection, "Projection: webmercator or lnglat")
	f.StringVar(&cfg.Backend, "backend", cfg.Backend, "Drawing backend: image or gg")
	f.StringVar(&opts.background, "background", "", "Background color (default transparent)")
	f.BoolVar(&opts.markers, "markers", false, "Outline sample positions")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

// buildRenderer configures an IDW renderer from cfg.
func buildRenderer(cfg *config.Config, honey bool) (*interp.InverseDistanceWeight, error) {
	resample, err := interp.ParseResample(cfg.Resample)
	if err != nil {
		return nil, err
	}
	opts := []interp.Option{
		interp.WithResolution(cfg.Resolution),
		interp.WithDecay(interp.InversePower(cfg.Power)),
		interp.WithRadius(cfg.Radius),
		interp.WithThin(cfg.Thin),
		interp.WithResample(resample),
	}
	if cfg.Gradient != "" {
		stops, err := interp.ParseGradient(cfg.Gradient)
		if err != nil {
			return nil, err
		}
		opts = append(opts, interp.WithGradient(stops))
	}
	if honey {
		opts = append(opts, interp.WithHoneycomb(cfg.HoneySide))
	}
	return interp.New(opts...), nil
}

// resolveView picks the view center and resolution. Without --center the
// view is centered on the data; without --zoom as well, it fits the data.
func resolveView(cmd *cobra.Command, cfg *config.Config, opts renderOptions, fc *feature.FeatureClass, proj ggmap.Projection) (ggmap.View, float64, error) {
	zoom := cfg.Zoom
	res := projection.Resolution(proj, zoom)

	if opts.center != "" {
		lng, lat, err := parseCenter(opts.center)
		if err != nil {
			return ggmap.View{}, 0, err
		}
		return ggmap.NewView(proj.Project(lng, lat), res, cfg.Width, cfg.Height), zoom, nil
	}

	b, ok := dataBound(fc, proj)
	if !ok {
		return ggmap.NewView(proj.Bound().Center(), res, cfg.Width, cfg.Height), zoom, nil
	}
	if !cmd.Flags().Changed("zoom") {
		res = fitResolution(b, cfg.Width, cfg.Height, res)
		zoom = zoomFor(proj, res)
	}
	return ggmap.NewView(b.Center(), res, cfg.Width, cfg.Height), zoom, nil
}
