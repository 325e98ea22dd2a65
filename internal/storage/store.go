package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/uhecr/internal/photodis"
	"github.com/san-kum/uhecr/internal/prop"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string         `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	Field       string         `json:"photon_field"`
	Nuclide     string         `json:"nuclide"`
	EnergyEeV   float64        `json:"energy_eev"`
	Redshift    float64        `json:"redshift"`
	Seed        int64          `json:"seed"`
	Runs        int            `json:"runs"`
	Survived    int            `json:"survived"`
	Exhausted   int            `json:"exhausted"`
	Channels    map[string]int `json:"channel_counts"`
	MeanPathMpc float64        `json:"mean_path_mpc"`
}

// Save writes one ensemble run as a directory holding metadata.json
// and events.csv, one CSV row per disintegration event.
func (s *Store) Save(meta RunMetadata, results []*prop.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Nuclide, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Runs = len(results)
	meta.Channels = make(map[string]int)

	totalPath := 0.0
	events := 0
	for _, r := range results {
		if r.Survived {
			meta.Survived++
		}
		if r.Exhausted {
			meta.Exhausted++
		}
		for _, ev := range r.Events {
			meta.Channels[strconv.Itoa(ev.Channel)]++
			events++
		}
		totalPath += r.Distance
	}
	if events > 0 {
		meta.MeanPathMpc = totalPath / float64(events) / photodis.Mpc
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "events.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"run", "distance_mpc", "channel", "a", "z", "energy_eev"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, r := range results {
		for _, ev := range r.Events {
			row := []string{
				strconv.Itoa(i),
				strconv.FormatFloat(ev.Distance/photodis.Mpc, 'f', 6, 64),
				strconv.Itoa(ev.Channel),
				strconv.Itoa(ev.After.A),
				strconv.Itoa(ev.After.Z),
				strconv.FormatFloat(ev.After.Energy/1e18, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

// List returns the stored run IDs, newest last.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			runs = append(runs, e.Name())
		}
	}
	sort.Strings(runs)
	return runs, nil
}

// LoadMetadata reads the metadata of a stored run.
func (s *Store) LoadMetadata(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
