// Command mkvecscale generates a vector scale table and writes it as C, Go,
// raw binary or text.
//
//	mkvecscale -diameter 240 -format c -size DIAMETER > vecscale.h
//	mkvecscale -diameter 240 -format go -pkg vecscale -name published240 -out published240.go
//	mkvecscale -diameter 320 -curve arcsine -format bin -order little -out scale.bin
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"orb/internal/buildinfo"
	"orb/vecscale"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	diameter int
	fracBits uint
	curve    string
	rounding string
	format   string
	order    string
	name     string
	pkg      string
	size     string
	out      string
}

func main() {
	var opts options
	flag.IntVar(&opts.diameter, "diameter", vecscale.Diameter, "Display diameter in pixels (entries in the table).")
	flag.UintVar(&opts.fracBits, "frac-bits", vecscale.DefaultFracBits, "Fractional bits F; values are scale * 2^F.")
	flag.StringVar(&opts.curve, "curve", vecscale.PixelCenter.Name(), strings.Join(vecscale.CurveNames(), "|")+".")
	flag.StringVar(&opts.rounding, "rounding", "half-up", "half-up|half-even.")
	flag.StringVar(&opts.format, "format", "c", "c|go|bin|text.")
	flag.StringVar(&opts.order, "order", "native", "Byte order for -format bin: native|little|big.")
	flag.StringVar(&opts.name, "name", "vecscale", "Identifier of the emitted array.")
	flag.StringVar(&opts.pkg, "pkg", "vecscale", "Package clause for -format go.")
	flag.StringVar(&opts.size, "size", "", "Array length expression for -format c (default: the diameter).")
	flag.StringVar(&opts.out, "out", "", "Output file (default stdout).")
	version := flag.Bool("version", false, "Print version and exit.")
	flag.Parse()

	if *version {
		fmt.Println("mkvecscale", buildinfo.String())
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Str("module", "mkvecscale").Logger()

	if err := run(opts); err != nil {
		fatalf("mkvecscale: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func run(opts options) error {
	tab, err := build(opts)
	if err != nil {
		return err
	}
	st := tab.Stats()
	ev := log.Info()
	if st.Repairs > 0 || st.FloorRaised {
		ev = log.Warn()
	}
	ev.Str("curve", opts.curve).
		Int("diameter", tab.Diameter()).
		Uint("frac_bits", tab.FracBits()).
		Int("repairs", st.Repairs).
		Bool("floor_raised", st.FloorRaised).
		Uint16("min", st.Min).
		Uint16("max", st.Max).
		Msg("table built")

	w := io.Writer(os.Stdout)
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	if err := emit(bw, tab, opts); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if opts.out != "" {
		log.Info().Str("out", opts.out).Str("format", opts.format).Msg("written")
	}
	return nil
}

func build(opts options) (*vecscale.Table, error) {
	c, err := vecscale.CurveByName(opts.curve)
	if err != nil {
		return nil, err
	}
	r, err := vecscale.ParseRounding(opts.rounding)
	if err != nil {
		return nil, err
	}
	return vecscale.Build(vecscale.Config{
		Diameter: opts.diameter,
		FracBits: opts.fracBits,
		Curve:    c,
		Rounding: r,
	})
}

func emit(w io.Writer, tab *vecscale.Table, opts options) error {
	src := vecscale.SourceOptions{Name: opts.name, Package: opts.pkg, Size: opts.size}
	switch strings.ToLower(opts.format) {
	case "c":
		return vecscale.WriteC(w, tab, src)
	case "go":
		src.Comment = fmt.Sprintf("%s holds %d entries: curve %s, %d fractional bits, rounding %s.",
			opts.name, tab.Diameter(), opts.curve, tab.FracBits(), opts.rounding)
		return vecscale.WriteGo(w, tab, src)
	case "bin":
		order, err := vecscale.ParseByteOrder(opts.order)
		if err != nil {
			return err
		}
		_, err = w.Write(tab.Bytes(order))
		return err
	case "text":
		return vecscale.WriteText(w, tab)
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
}
