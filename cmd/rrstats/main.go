// Command rrstats summarises the R-R intervals recorded by a heart rate strap
// and writes their density histograms.
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
	"github.com/banshee-data/runlog/internal/recording"
	"github.com/banshee-data/runlog/internal/report"
	"github.com/banshee-data/runlog/internal/version"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rrstats: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("rrstats", flag.ContinueOnError)
	split := fs.Int("split", 0, "index of split to read, -1 for every split")
	configPath := fs.String("config", "", "path to a report config JSON file")
	outDir := fs.String("out", "", "output directory (overrides the config)")
	verbose := fs.Bool("v", false, "log every file written")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: rrstats [flags] <recording.json>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String("rrstats"))
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

	rec, err := recording.Load(fsys, fs.Arg(0))
	if err != nil {
		return err
	}
	s := rec.Merged()
	if *split != report.WholeRecording {
		if s, err = rec.Split(*split); err != nil {
			return err
		}
	}

	stats, path, err := report.NewRenderer(fsys, cfg).RRIntervals(rec.Name, s.RRIntervals())
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, stats)
	if energy := recording.EnergyExpended(s.HeartRate()); len(energy) > 0 {
		fmt.Fprintf(stdout, "energy expended: %d kJ\n", energy[len(energy)-1])
	}
	fmt.Fprintln(stdout, path)
	return nil
}
