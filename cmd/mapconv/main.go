// Command mapconv converts coordinate pairs between cartographic reference
// systems. It reads whitespace-separated pairs from a file or stdin, pushes
// them through a conversion pipe built from two projection specs, and writes
// the converted pairs to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ScaleWeather/mappers"
	"github.com/ScaleWeather/mappers/projections"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	var (
		sourceSpec  string
		targetSpec  string
		ellpsName   string
		precision   int
		showVersion bool
		verbose     bool
	)

	flag.StringVar(&sourceSpec, "source", "lonlat", "Source projection spec (see -help for forms)")
	flag.StringVar(&targetSpec, "target", "lonlat", "Target projection spec (see -help for forms)")
	flag.StringVar(&ellpsName, "ellps", "wgs84", "Reference ellipsoid: wgs84, grs80, wgs72, wgs66, wgs60, sphere")
	flag.IntVar(&precision, "precision", 6, "Decimal digits in the output")
	flag.BoolVar(&verbose, "verbose", false, "Verbose progress output")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mapconv [flags] [input-file]\n\n")
		fmt.Fprintf(os.Stderr, "Convert coordinate pairs (one \"a b\" pair per line) from the source\n")
		fmt.Fprintf(os.Stderr, "projection's system to the target's. Without an input file, pairs are\n")
		fmt.Fprintf(os.Stderr, "read from stdin. A \"lonlat\" source means the input is geographic\n")
		fmt.Fprintf(os.Stderr, "degrees; a \"lonlat\" target means the output is.\n\n")
		fmt.Fprintf(os.Stderr, "Projection spec forms:\n")
		fmt.Fprintf(os.Stderr, "  lonlat\n")
		fmt.Fprintf(os.Stderr, "  lcc:refLon,refLat,stdPar1,stdPar2\n")
		fmt.Fprintf(os.Stderr, "  merc:refLon,stdPar\n")
		fmt.Fprintf(os.Stderr, "  tmerc:refLon,refLat,scale,falseEasting,falseNorthing\n")
		fmt.Fprintf(os.Stderr, "  eqc:refLon,refLat,stdPar\n")
		fmt.Fprintf(os.Stderr, "  aeqd:refLon,refLat\n")
		fmt.Fprintf(os.Stderr, "  oblique:poleLon,poleLat,centralLon\n\n")
		fmt.Fprintf(os.Stderr, "Example: mapconv -source lonlat -target lcc:2,0,30,60 points.txt\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("mapconv %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	ellps, err := parseEllipsoid(ellpsName)
	if err != nil {
		log.Fatalf("Ellipsoid: %v", err)
	}

	source, err := parseProjection(sourceSpec, ellps)
	if err != nil {
		log.Fatalf("Source projection: %v", err)
	}
	target, err := parseProjection(targetSpec, ellps)
	if err != nil {
		log.Fatalf("Target projection: %v", err)
	}

	in := os.Stdin
	args := flag.Args()
	switch len(args) {
	case 0:
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("Opening input: %v", err)
		}
		defer f.Close()
		in = f
	default:
		flag.Usage()
		os.Exit(1)
	}

	coords, err := readCoords(in)
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}
	if verbose {
		log.Printf("Read %d coordinate pairs", len(coords))
	}

	start := time.Now()
	pipe := mappers.NewConversionPipe(source, target)
	converted, err := mappers.ConvertBatch(pipe, coords)
	if err != nil {
		log.Fatalf("Converting: %v", err)
	}
	if verbose {
		log.Printf("Converted %d pairs in %v", len(converted),
			time.Since(start).Round(time.Microsecond))
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, pt := range converted {
		fmt.Fprintf(w, "%.*f %.*f\n", precision, pt[0], precision, pt[1])
	}
}

func readCoords(f *os.File) ([][2]float64, error) {
	var coords [][2]float64
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 fields, got %d", line, len(fields))
		}
		a, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		b, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		coords = append(coords, [2]float64{a, b})
	}
	return coords, scanner.Err()
}

func parseEllipsoid(name string) (mappers.Ellipsoid, error) {
	switch strings.ToLower(name) {
	case "wgs84":
		return mappers.WGS84, nil
	case "grs80":
		return mappers.GRS80, nil
	case "wgs72":
		return mappers.WGS72, nil
	case "wgs66":
		return mappers.WGS66, nil
	case "wgs60":
		return mappers.WGS60, nil
	case "sphere":
		return mappers.Sphere, nil
	default:
		return mappers.Ellipsoid{}, fmt.Errorf("unknown ellipsoid %q", name)
	}
}

// parseProjection builds a projection from a "name:p1,p2,..." spec string.
func parseProjection(spec string, ellps mappers.Ellipsoid) (mappers.Projection, error) {
	name, paramStr, _ := strings.Cut(spec, ":")
	params, err := parseParams(paramStr)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", spec, err)
	}

	switch strings.ToLower(name) {
	case "lonlat":
		if len(params) != 0 {
			return nil, fmt.Errorf("%q: lonlat takes no parameters", spec)
		}
		return projections.NewLongitudeLatitude(), nil
	case "lcc":
		if len(params) != 4 {
			return nil, fmt.Errorf("%q: lcc takes refLon,refLat,stdPar1,stdPar2", spec)
		}
		return projections.NewLambertConformalConic(params[0], params[1], params[2], params[3], ellps)
	case "merc":
		if len(params) != 2 {
			return nil, fmt.Errorf("%q: merc takes refLon,stdPar", spec)
		}
		return projections.NewMercator(params[0], params[1], ellps)
	case "tmerc":
		if len(params) != 5 {
			return nil, fmt.Errorf("%q: tmerc takes refLon,refLat,scale,falseEasting,falseNorthing", spec)
		}
		return projections.NewTransverseMercator(params[0], params[1], params[2], params[3], params[4], ellps)
	case "eqc":
		if len(params) != 3 {
			return nil, fmt.Errorf("%q: eqc takes refLon,refLat,stdPar", spec)
		}
		return projections.NewEquidistantCylindrical(params[0], params[1], params[2])
	case "aeqd":
		if len(params) != 2 {
			return nil, fmt.Errorf("%q: aeqd takes refLon,refLat", spec)
		}
		return projections.NewModifiedAzimuthalEquidistant(params[0], params[1], ellps)
	case "oblique":
		if len(params) != 3 {
			return nil, fmt.Errorf("%q: oblique takes poleLon,poleLat,centralLon", spec)
		}
		return projections.NewObliqueLonLat(params[0], params[1], params[2])
	default:
		return nil, fmt.Errorf("unknown projection %q", name)
	}
}

func parseParams(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	params := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		params[i] = v
	}
	return params, nil
}
