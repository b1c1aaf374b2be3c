// Command consensusfit fits a consensus (errors-in-variables) regression
// line to paired observations read from a CSV file or stdin.
//
// Usage:
//
//	consensusfit [flags] [file.csv]
//
// The input is one "x,y" pair per line; a header line and blank lines are
// skipped, and NA/NaN/empty fields become NaN pairs that the fit drops.
//
// Examples:
//
//	consensusfit data.csv
//	consensusfit -wx 0.3 data.csv
//	consensusfit -sx 2.4 -sy 10.3 data.csv
//	consensusfit -origin -wx 0 < data.csv
//	consensusfit -boot 2000 data.csv
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-regress/consensus"
)

func main() {
	wx := flag.Float64("wx", 0.5, "x-axis weight in [0,1]; 0.5 is model II regression")
	sx := flag.Float64("sx", math.NaN(), "x measurement uncertainty (with -sy, overrides -wx)")
	sy := flag.Float64("sy", math.NaN(), "y measurement uncertainty (with -sx, overrides -wx)")
	origin := flag.Bool("origin", false, "force the fitted line through the origin")
	boot := flag.Int("boot", 0, "bootstrap resamples for confidence intervals (0 = off)")
	seed := flag.Int64("seed", 1, "bootstrap PRNG seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: consensusfit [flags] [file.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Fits a weighted errors-in-variables regression line to x,y pairs.\n")
		fmt.Fprintf(os.Stderr, "Reads from stdin when no file is given.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	x, y, err := readPairs(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fn := fitFunc(*wx, *sx, *sy, *origin)

	res, err := fn(x, y)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printResult(res)

	if *boot > 0 {
		br, err := consensus.Bootstrap(x, y, fn, consensus.BootstrapConfig{
			Resamples: *boot,
			Seed:      *seed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		printBootstrap(br)
	}
}

// fitFunc selects the entry point: uncertainty-derived weights when both
// -sx and -sy are given, explicit weight otherwise.
func fitFunc(wx, sx, sy float64, origin bool) consensus.FitFunc {
	if !math.IsNaN(sx) && !math.IsNaN(sy) {
		return func(x, y []float64) (consensus.Result, error) {
			return consensus.FitUncertainty(x, y, sx, sy, origin)
		}
	}

	return func(x, y []float64) (consensus.Result, error) {
		return consensus.FitWeighted(x, y, wx, origin)
	}
}

// readPairs parses "x,y" lines. Non-numeric fields (NA, NaN, empty) parse
// as NaN so the fit's pairwise dropping applies; a non-numeric first line
// is treated as a header.
func readPairs(r io.Reader) (x, y []float64, err error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 fields, got %d", lineNo, len(fields))
		}

		xv, xok := parseValue(fields[0])
		yv, yok := parseValue(fields[1])

		if !xok || !yok {
			if lineNo == 1 {
				continue // header
			}

			return nil, nil, fmt.Errorf("line %d: cannot parse %q", lineNo, line)
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

// parseValue parses a numeric field. Missing-value markers return NaN with
// ok=true; anything else non-numeric reports ok=false.
func parseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "", "na", "nan":
		return math.NaN(), true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func printResult(res consensus.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "n\t%d\t(dof %d, wx %.4f)\n", res.N, res.DOF, res.Wx)
	fmt.Fprintf(tw, "slope\t%.6g\t± %.6g\t(t %.4g, p %.4g)\n",
		res.Slope, res.SlopeStdErr, res.SlopeTValue, res.SlopePValue)
	fmt.Fprintf(tw, "intercept\t%.6g\t± %.6g\t(t %.4g, p %.4g)\n",
		res.Intercept, res.InterceptStdErr, res.InterceptTValue, res.InterceptPValue)
	fmt.Fprintf(tw, "r2\t%.6g\t(adjusted %.6g)\n", res.RSquared, res.RSquaredAdjusted)
	fmt.Fprintf(tw, "F\t%.6g\t(p %.4g)\n", res.FStatistic, res.PValue)
	fmt.Fprintf(tw, "rmse\t%.6g\n", res.RMSE)

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printBootstrap(br consensus.BootstrapResult) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "bootstrap\t%d resamples\n", br.Resamples)
	fmt.Fprintf(tw, "slope CI\t[%.6g, %.6g]\n", br.SlopeLow, br.SlopeHigh)
	fmt.Fprintf(tw, "intercept CI\t[%.6g, %.6g]\n", br.InterceptLow, br.InterceptHigh)

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
