package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store persists integration runs under a base directory, one
// subdirectory per run holding metadata.json and trajectory.csv.
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
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Scheme    string             `json:"scheme"`
	Dim       int                `json:"dim"`
	Steps     int                `json:"steps"`
	Dt        float64            `json:"dt"`
	Seed      int64              `json:"seed"`
	Sigma     float64            `json:"sigma"`
	Timestamp time.Time          `json:"timestamp"`
	Stats     map[string]float64 `json:"stats,omitempty"`
}

// Save writes a run directory from a time-major trajectory buffer of
// meta.Steps slots, each meta.Dim wide, and returns the generated run
// id. The CSV carries a time column derived from meta.Dt.
func (s *Store) Save(meta RunMetadata, traj []float64) (string, error) {
	if len(traj) != meta.Dim*meta.Steps {
		return "", fmt.Errorf("storage: trajectory length %d does not match %dx%d", len(traj), meta.Dim, meta.Steps)
	}

	runID := fmt.Sprintf("%s_%d", meta.Model, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

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

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for d := 0; d < meta.Dim; d++ {
		header = append(header, fmt.Sprintf("x%d", d))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for k := 0; k < meta.Steps; k++ {
		row := make([]string, 0, meta.Dim+1)
		row = append(row, strconv.FormatFloat(float64(k)*meta.Dt, 'g', -1, 64))
		for d := 0; d < meta.Dim; d++ {
			row = append(row, strconv.FormatFloat(traj[k*meta.Dim+d], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
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

// LoadTrajectory reads a run's CSV back as a time column plus one
// state vector per slot.
func (s *Store) LoadTrajectory(runID string) ([]float64, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("storage: run %s: bad value %q: %w", runID, field, err)
			}
			state = append(state, v)
		}

		times = append(times, t)
		states = append(states, state)
	}

	return times, states, nil
}
