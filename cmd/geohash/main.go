package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"geohash-api/internal/service"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Lat       *float64 `long:"lat" description:"Latitude to encode, requires --lon"`
	Lon       *float64 `long:"lon" description:"Longitude to encode, requires --lat"`
	Precision int      `short:"p" long:"precision" description:"Geohash length for --lat/--lon" default:"12"`
	Decode    string   `short:"d" long:"decode" description:"Geohash to decode into center and per-axis error" value-name:"HASH"`
	BBox      string   `short:"b" long:"bbox" description:"Geohash to expand into its bounding box" value-name:"HASH"`
	Neighbors string   `short:"n" long:"neighbors" description:"Geohash to list the eight compass neighbors of" value-name:"HASH"`
	Format    string   `short:"f" long:"format" description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
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

	ctx := context.Background()

	switch {
	case opts.Lat != nil || opts.Lon != nil:
		if opts.Lat == nil || opts.Lon == nil {
			fmt.Fprintln(os.Stderr, "Error: --lat and --lon must be given together")
			os.Exit(1)
		}
		encoded, err := service.NewEncodeService().Encode(ctx, *opts.Lat, *opts.Lon, opts.Precision)
		if err != nil {
			fail(err)
		}
		if opts.Format == "text" {
			fmt.Println(encoded.Geohash)
			return
		}
		render(opts.Format, encoded)

	case opts.Decode != "":
		point, err := service.NewDecodeService().Decode(ctx, opts.Decode)
		if err != nil {
			fail(err)
		}
		if opts.Format == "text" {
			fmt.Printf("lat: %v ±%v\n", point.Latitude, point.LatitudeError)
			fmt.Printf("lon: %v ±%v\n", point.Longitude, point.LongitudeError)
			return
		}
		render(opts.Format, point)

	case opts.BBox != "":
		box, err := service.NewDecodeService().BBox(ctx, opts.BBox)
		if err != nil {
			fail(err)
		}
		if opts.Format == "text" {
			fmt.Printf("min: %v %v\n", box.MinLatitude, box.MinLongitude)
			fmt.Printf("max: %v %v\n", box.MaxLatitude, box.MaxLongitude)
			return
		}
		render(opts.Format, box)

	case opts.Neighbors != "":
		record, err := service.NewNeighborService().Neighbors(ctx, opts.Neighbors)
		if err != nil {
			fail(err)
		}
		if opts.Format == "text" {
			fmt.Printf("n:  %s\nne: %s\ne:  %s\nse: %s\ns:  %s\nsw: %s\nw:  %s\nnw: %s\n",
				record.N, record.NE, record.E, record.SE, record.S, record.SW, record.W, record.NW)
			return
		}
		render(opts.Format, record)

	default:
		fmt.Fprintln(os.Stderr, "Error: one of --lat/--lon, --decode, --bbox or --neighbors is required")
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func render(format string, v interface{}) {
	var out []byte
	var err error

	switch format {
	case "yaml":
		out, err = yaml.Marshal(v)
	default:
		out, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		fail(err)
	}

	fmt.Println(string(out))
}
