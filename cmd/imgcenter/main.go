package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/imgcenter/internal/config"
	"github.com/woozymasta/imgcenter/internal/geo"
	"github.com/woozymasta/imgcenter/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string  `short:"c" long:"config"     env:"SCENE_FILE" description:"Path to scene file, overrides scene options"`
	Lat        string  `long:"lat"                  description:"Reference point latitude"      default:"50.603694"`
	Lon        string  `long:"lon"                  description:"Reference point longitude"     default:"30.650625"`
	Image      string  `short:"i" long:"image"      description:"Image file, its size gives the center pixel"`
	Projection string  `long:"projection"           description:"Azimuth projection method" choice:"decomposition" choice:"matrix" default:"decomposition"`
	Format     string  `short:"f" long:"format"     description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	Azimuth    int     `short:"a" long:"azimuth"    description:"Camera azimuth in degrees, 0 = North, clockwise" default:"335"`
	CenterX    int     `long:"center-x"             description:"Image center X in pixels" default:"320"`
	CenterY    int     `long:"center-y"             description:"Image center Y in pixels" default:"256"`
	PointX     int     `long:"point-x"              description:"Reference point X in pixels" default:"558"`
	PointY     int     `long:"point-y"              description:"Reference point Y in pixels" default:"328"`
	Scale      float64 `short:"s" long:"scale"      description:"Pixel size in meters" default:"0.38"`
	Precision  uint32  `short:"p" long:"precision"  description:"Significant digits for the final coordinates" default:"8"`
	Trace      bool    `short:"t" long:"trace"      description:"Print every intermediate step"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(os.Stdout, opts); err != nil {
		log.Fatal().Err(err).Msg("Failed to compute image center")
	}
}

// scene builds the scene from the config file or, without one, from the options.
func (o Options) scene() (*config.Scene, error) {
	if o.ConfigFile != "" {
		return config.Load(o.ConfigFile)
	}

	scene := &config.Scene{
		Reference:  config.Reference{Lat: o.Lat, Lon: o.Lon},
		Image:      o.Image,
		Projection: o.Projection,
		Azimuth:    o.Azimuth,
		PointPx:    geo.PixelPoint{X: o.PointX, Y: o.PointY},
		Scale:      o.Scale,
		Precision:  o.Precision,
	}
	if o.Image == "" {
		scene.CenterPx = &geo.PixelPoint{X: o.CenterX, Y: o.CenterY}
	}

	return scene, scene.Validate()
}

func run(out io.Writer, opts Options) error {
	scene, err := opts.scene()
	if err != nil {
		return err
	}

	in, err := scene.Input()
	if err != nil {
		return err
	}

	tracers := geo.MultiTracer{geo.LogTracer{Logger: log.Logger, Level: zerolog.DebugLevel}}
	if opts.Trace {
		tracers = append(tracers, geo.TextTracer{W: out})
	}

	calc, err := scene.Calculator(tracers)
	if err != nil {
		return err
	}

	log.Debug().
		Str("lat", scene.Reference.Lat).
		Str("lon", scene.Reference.Lon).
		Int("azimuth", scene.Azimuth).
		Int("center_x", in.CenterPx.X).
		Int("center_y", in.CenterPx.Y).
		Int("point_x", in.PointPx.X).
		Int("point_y", in.PointPx.Y).
		Float64("scale", in.Scale).
		Msg("Computing image center")

	center, err := calc.ImageCenter(in)
	if err != nil {
		return err
	}

	return write(out, opts.Format, center, in.Point)
}

func write(out io.Writer, format string, center, reference geo.Coordinate) error {
	if format == "" || format == "text" {
		_, err := fmt.Fprintf(out, "Image center coordinates: %s\n", center)
		return err
	}

	feature, err := geo.Feature(center, reference)
	if err != nil {
		return err
	}

	var data []byte
	if format == "yaml" {
		data, err = yaml.Marshal(feature)
	} else {
		data, err = json.MarshalIndent(feature, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal %s: %w", format, err)
	}

	_, err = fmt.Fprintln(out, string(data))
	return err
}
