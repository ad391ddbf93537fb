// Command motion charts an accelerometer trace and looks for repeating
// movement in its x axis.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/runlog/internal/config"
	"github.com/banshee-data/runlog/internal/fsutil"
	"github.com/banshee-data/runlog/internal/monitoring"
	"github.com/banshee-data/runlog/internal/motion"
	"github.com/banshee-data/runlog/internal/recording"
	"github.com/banshee-data/runlog/internal/report"
	"github.com/banshee-data/runlog/internal/version"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("motion: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("motion", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a report config JSON file")
	outDir := fs.String("out", "", "output directory (overrides the config)")
	periodicity := fs.Bool("periodicity", false, "also correlate the head of the trace against the whole of it")
	verbose := fs.Bool("v", false, "log every file written")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: motion [flags] <acceleration.json>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String("motion"))
		return nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one input file, got %d", fs.NArg())
	}
	monitoring.SetVerbose(*verbose)

	fsys := fsutil.OSFileSystem{}
	cfg := config.EmptyReportConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadReportConfig(fsys, *configPath); err != nil {
			return err
		}
	}
	if *outDir != "" {
		cfg.OutputDir = outDir
	}

	samples, err := recording.LoadAcceleration(fsys, fs.Arg(0))
	if err != nil {
		return err
	}
	name := recording.BaseName(fs.Arg(0))

	paths, repeats, err := report.NewRenderer(fsys, cfg).Motion(name, samples)
	if err != nil {
		return err
	}
	for i, p := range paths {
		fmt.Fprintf(stdout, "%s repeats at %v s\n", p, repeats[i].PeakTimes(cfg.GetSamplePeriod()))
	}

	if *periodicity {
		x := recording.Component(samples, recording.AxisX)
		corr, lags, err := motion.Periodicity(x, cfg.GetPeriodicityHead())
		if err != nil {
			return err
		}
		var lagSeconds []float64
		for _, p := range motion.PeakLags(corr, cfg.GetPeakFraction()) {
			lagSeconds = append(lagSeconds, float64(lags[p])*cfg.GetSamplePeriod())
		}
		fmt.Fprintf(stdout, "periodicity peaks at %v s\n", lagSeconds)
	}
	return nil
}
