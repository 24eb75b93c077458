// transport-catalogue builds a bus route catalogue and answers stat queries.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/input"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
	"github.com/theoremus-urban-solutions/transport-catalogue/server"
	"github.com/theoremus-urban-solutions/transport-catalogue/stat"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("transport-catalogue", flag.ContinueOnError)
	flags.SetOutput(stderr)

	mode := flags.String("mode", "oneshot", "oneshot|serve")
	configPath := flags.String("config", "", "config file (default config.yml if present)")
	inputPath := flags.String("input", "", "catalogue input file (overrides config; oneshot reads stdin when empty)")
	inputFormat := flags.String("inputFormat", "", "text|yaml|gtfs (default: guess from extension)")
	format := flags.String("format", "", "text|json (overrides config)")
	port := flags.Int("port", 0, "HTTP port for serve mode (overrides config)")
	verbosity := flags.Int("v", 0, "log verbosity")
	if err := flags.Parse(args); err != nil {
		return err
	}

	internal.InitLogging(*verbosity)
	defer internal.FlushLogs()
	if err := loadConfig(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Config
	if *inputPath != "" {
		cfg.Catalogue.Input = *inputPath
	}
	if *inputFormat != "" {
		cfg.Catalogue.Format = *inputFormat
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	switch *mode {
	case "oneshot":
		return runOneshot(cfg, stdin, stdout, stderr)
	case "serve":
		return runServe(ctx, cfg)
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
}

// loadConfig reads an explicit config file, or config.yml when present,
// falling back to defaults and the environment.
func loadConfig(path string) error {
	if path != "" {
		return config.LoadAppConfig(path)
	}
	err := config.LoadAppConfig()
	if errors.Is(err, fs.ErrNotExist) {
		return config.LoadDefaults()
	}
	return err
}

func runOneshot(cfg config.AppConfig, stdin io.Reader, stdout, stderr io.Writer) error {
	var batch input.Batch
	var err error
	switch {
	case cfg.Catalogue.Input != "" && cfg.Catalogue.Input != "-":
		batch, err = input.LoadFile(cfg.Catalogue.Input, cfg.Catalogue.Format, gtfsOptions(cfg))
	case cfg.Catalogue.Format == "yaml":
		batch, err = input.LoadYAML(stdin)
	default:
		batch, err = input.ReadBatch(stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	cat := catalogue.New()
	if err := input.Apply(cat, batch); err != nil {
		return fmt.Errorf("building catalogue: %w", err)
	}

	responses, errs := stat.ExecuteAll(cat, batch.Requests)
	for _, e := range errs {
		fmt.Fprintf(stderr, "skipping request: %v\n", e)
		glog.V(1).Infof("skipped request: %v", e)
	}

	if cfg.Output.Format == "json" {
		_, err := stdout.Write(append(formatter.BuildJSONArray(responses), '\n'))
		return err
	}
	return formatter.WriteText(stdout, responses)
}

func runServe(ctx context.Context, cfg config.AppConfig) error {
	if cfg.Catalogue.Input == "" {
		return errors.New("serve mode needs a catalogue input (-input or catalogue.input)")
	}
	batch, err := input.LoadFile(cfg.Catalogue.Input, cfg.Catalogue.Format, gtfsOptions(cfg))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	cat := catalogue.New()
	if err := input.Apply(cat, batch); err != nil {
		return fmt.Errorf("building catalogue: %w", err)
	}

	srv := server.New(cat, cfg.Server)
	srv.Start()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	glog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.ShutdownTimeout())
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func gtfsOptions(cfg config.AppConfig) input.GTFSOptions {
	return input.GTFSOptions{DistanceScale: cfg.Catalogue.GTFSDistanceScale}
}
