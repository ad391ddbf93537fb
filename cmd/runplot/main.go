// Command runplot renders the charts for a run recording: position, accuracy,
// altitude, distance, heart rate, velocity and dead reckoning.
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
	log.SetPrefix("runplot: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("runplot", flag.ContinueOnError)
	split := fs.Int("split", report.WholeRecording, "index of split in data to process (default: every split)")
	sorted := fs.Bool("sorted", false, "number splits by their first fix instead of file order")
	track := fs.Bool("track", false, "overlay a 400m track on position data")
	configPath := fs.String("config", "", "path to a report config JSON file")
	outDir := fs.String("out", "", "output directory (overrides the config)")
	noHTML := fs.Bool("no-html", false, "skip the interactive HTML pages")
	verbose := fs.Bool("v", false, "log every file written")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: runplot [flags] <recording.json>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String("runplot"))
		return nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one input file, got %d", fs.NArg())
	}
	monitoring.SetVerbose(*verbose)

	fsys := fsutil.OSFileSystem{}
	cfg, err := loadConfig(fsys, *configPath)
	if err != nil {
		return err
	}
	if *outDir != "" {
		cfg.OutputDir = outDir
	}
	if *track {
		cfg.TrackOverlay = track
	}
	if *noHTML {
		html := false
		cfg.HTML = &html
	}

	rec, err := recording.Load(fsys, fs.Arg(0))
	if err != nil {
		return err
	}
	if *sorted {
		rec.Splits = recording.SortSplits(rec.Splits)
	}

	paths, err := report.NewRenderer(fsys, cfg).Run(rec, *split)
	for _, p := range paths {
		fmt.Fprintln(stdout, p)
	}
	return err
}

func loadConfig(fsys fsutil.FileSystem, path string) (*config.ReportConfig, error) {
	if path == "" {
		return config.EmptyReportConfig(), nil
	}
	return config.LoadReportConfig(fsys, path)
}
