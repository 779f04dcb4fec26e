package build

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// Source produces the latest set of build records. It is polled by the UI at
// its own cadence; the board never calls it directly.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Record, error)
}

// snapshotFile is the on-disk shape of a build snapshot.
type snapshotFile struct {
	Builds []snapshotEntry `yaml:"builds" json:"builds"`
}

type snapshotEntry struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Status      string `yaml:"status" json:"status"`
	StartTime   string `yaml:"start_time" json:"start_time"`
	Duration    string `yaml:"duration" json:"duration"`
	RequestedBy string `yaml:"requested_by" json:"requested_by"`
	Comment     string `yaml:"comment" json:"comment"`
	URL         string `yaml:"url" json:"url"`
}

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// FileSource reads a snapshot file that some other process (a CI exporter,
// a cron job) keeps up to date. YAML and JSON are supported, picked by
// extension.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return filepath.Base(s.path)
}

func (s *FileSource) Fetch(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return ParseSnapshot(data, filepath.Ext(s.path))
}

// ParseSnapshot decodes a snapshot document. ext selects the decoder
// (".yaml", ".yml" or ".json"). Entries without an ID or with an unparseable
// start time are skipped with a warning rather than failing the whole batch.
func ParseSnapshot(data []byte, ext string) ([]Record, error) {
	var snap snapshotFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	records := make([]Record, 0, len(snap.Builds))
	for i, e := range snap.Builds {
		if e.ID == "" {
			log.Printf("warning: snapshot entry %d has no id, skipping", i)
			continue
		}
		start, err := parseStartTime(e.StartTime)
		if err != nil {
			log.Printf("warning: snapshot entry %q: %v, skipping", e.ID, err)
			continue
		}
		records = append(records, Record{
			ID:             e.ID,
			Name:           e.Name,
			Status:         parseStatus(e.Status),
			LocalStartTime: start,
			Duration:       e.Duration,
			RequestedBy:    e.RequestedBy,
			Comment:        e.Comment,
			URL:            e.URL,
		})
	}
	return records, nil
}

func parseStartTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Local(), nil
		}
	}
	return time.Time{}, fmt.Errorf("start_time %q is not a recognised timestamp", s)
}

func parseStatus(s string) Status {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusQueued, StatusBuilding, StatusPassed, StatusFailed, StatusBroken, StatusFixed:
		return st
	case "running", "in_progress":
		return StatusBuilding
	case "success", "succeeded", "ok":
		return StatusPassed
	case "failure", "error":
		return StatusFailed
	default:
		return StatusUnknown
	}
}
