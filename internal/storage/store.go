// Package storage persists solve runs as one directory per run:
// metadata.json with the run parameters and samples.csv with the
// trajectory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/odelab/internal/ode"
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
	ID        string    `json:"id"`
	Problem   string    `json:"problem"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
	H         float64   `json:"h"`
	XEnd      float64   `json:"x_end"`
	Samples   int       `json:"samples"`
	MaxError  float64   `json:"max_error"`
}

func (s *Store) Save(problem, method string, h, xEnd, maxError float64, traj ode.Trajectory) (string, error) {
	// JSON cannot carry NaN; a run without a closed form stores -1.
	if math.IsNaN(maxError) {
		maxError = -1
	}

	runID := fmt.Sprintf("%s_%s_%d", problem, method, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Problem:   problem,
		Method:    method,
		Timestamp: time.Now(),
		H:         h,
		XEnd:      xEnd,
		Samples:   len(traj.Xs),
		MaxError:  maxError,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "samples.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return "", err
	}
	for i := range traj.Xs {
		row := []string{
			strconv.FormatFloat(traj.Xs[i], 'f', 6, 64),
			strconv.FormatFloat(traj.Ys[i], 'g', 17, 64),
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) (ode.Trajectory, error) {
	csvPath := filepath.Join(s.baseDir, runID, "samples.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return ode.Trajectory{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return ode.Trajectory{}, err
	}

	if len(records) < 2 {
		return ode.Trajectory{Xs: []float64{}, Ys: []float64{}}, nil
	}

	traj := ode.Trajectory{
		Xs: make([]float64, 0, len(records)-1),
		Ys: make([]float64, 0, len(records)-1),
	}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		traj.Xs = append(traj.Xs, x)
		traj.Ys = append(traj.Ys, y)
	}

	return traj, nil
}
