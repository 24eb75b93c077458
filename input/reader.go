package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"
)

// Reader accumulates base command lines
type Reader struct {
	commands []CommandDescription
}

// ParseLine records a command line. Malformed lines are skipped.
func (r *Reader) ParseLine(line string) {
	if cmd, ok := ParseCommandDescription(line); ok {
		r.commands = append(r.commands, cmd)
	}
}

// Definitions converts the accumulated commands into stop and bus definitions.
// Unknown commands are ignored.
func (r *Reader) Definitions() (Batch, error) {
	var b Batch
	for _, cmd := range r.commands {
		switch cmd.Command {
		case "Stop":
			coordStr, distStr := ParseStopDescription(cmd.Description)
			coords := ParseCoordinates(coordStr)
			def := StopDefinition{Name: cmd.ID, Lat: coords.Lat, Lng: coords.Lng}
			if strings.TrimSpace(distStr) != "" {
				d, err := ParseDistances(distStr)
				if err != nil {
					return Batch{}, fmt.Errorf("stop %s: %w", cmd.ID, err)
				}
				def.Distances = d
			}
			b.Stops = append(b.Stops, def)
		case "Bus":
			stops, roundTrip := ParseRoute(cmd.Description)
			b.Buses = append(b.Buses, BusDefinition{Name: cmd.ID, Stops: stops, RoundTrip: roundTrip})
		default:
			glog.Warningf("input: ignoring unknown command %q", cmd.Command)
		}
	}
	return b, nil
}

// ReadBatch reads the framed text format: a count N, N base lines,
// a count M and M stat requests. A missing request section is allowed.
func ReadBatch(src io.Reader) (Batch, error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, err := readCount(sc)
	if err != nil {
		return Batch{}, fmt.Errorf("base request count: %w", err)
	}
	var r Reader
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return Batch{}, fmt.Errorf("expected %d base requests, got %d", n, i)
		}
		r.ParseLine(sc.Text())
	}
	b, err := r.Definitions()
	if err != nil {
		return Batch{}, err
	}

	m, err := readCount(sc)
	if errors.Is(err, io.EOF) {
		return b, nil
	}
	if err != nil {
		return Batch{}, fmt.Errorf("stat request count: %w", err)
	}
	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return Batch{}, fmt.Errorf("expected %d stat requests, got %d", m, i)
		}
		b.Requests = append(b.Requests, strings.TrimRight(sc.Text(), "\r"))
	}
	return b, sc.Err()
}

// ReadLines parses unframed base lines until EOF
func ReadLines(src io.Reader) (Batch, error) {
	sc := bufio.NewScanner(src)
	var r Reader
	for sc.Scan() {
		r.ParseLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Batch{}, err
	}
	return r.Definitions()
}

// LoadYAML decodes a YAML batch. An empty document yields an empty batch.
func LoadYAML(src io.Reader) (Batch, error) {
	var b Batch
	if err := yaml.NewDecoder(src).Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return Batch{}, fmt.Errorf("failed to decode YAML batch: %w", err)
	}
	return b, nil
}

// LoadFile reads a batch from disk. format is "text", "yaml" or "gtfs";
// an empty format is guessed from the file extension.
func LoadFile(path, format string, gtfs GTFSOptions) (Batch, error) {
	if format == "" {
		format = formatFromExt(path)
	}
	if format == "gtfs" {
		return LoadGTFSZip(path, gtfs)
	}

	f, err := os.Open(path)
	if err != nil {
		return Batch{}, err
	}
	defer func() { _ = f.Close() }()

	switch format {
	case "yaml":
		return LoadYAML(f)
	case "text":
		return ReadBatch(f)
	default:
		return Batch{}, fmt.Errorf("unknown input format %q", format)
	}
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return "yaml"
	case ".zip":
		return "gtfs"
	default:
		return "text"
	}
}

func readCount(sc *bufio.Scanner) (int, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return 0, fmt.Errorf("negative count %d", n)
		}
		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}
