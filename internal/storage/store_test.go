package storage

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	traj := ode.Trajectory{
		Xs: []float64{0.0, 0.05, 0.1},
		Ys: []float64{2.0, 1.9538, 1.9135},
	}

	runID, err := st.Save("reference", "rk4", 0.05, 1.0, 3.2e-6, traj)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Problem != "reference" {
		t.Errorf("expected problem 'reference', got '%s'", meta.Problem)
	}
	if meta.Method != "rk4" {
		t.Errorf("expected method 'rk4', got '%s'", meta.Method)
	}
	if meta.H != 0.05 {
		t.Errorf("expected h 0.05, got %f", meta.H)
	}
	if meta.Samples != 3 {
		t.Errorf("expected 3 samples, got %d", meta.Samples)
	}

	loaded, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}

	if len(loaded.Xs) != 3 || len(loaded.Ys) != 3 {
		t.Fatalf("expected 3 samples, got %d/%d", len(loaded.Xs), len(loaded.Ys))
	}
	for i := range traj.Ys {
		if math.Abs(loaded.Ys[i]-traj.Ys[i]) > 1e-12 {
			t.Errorf("sample %d: got %g, want %g", i, loaded.Ys[i], traj.Ys[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs in fresh store, got %d", len(runs))
	}

	traj := ode.Trajectory{Xs: []float64{0, 1}, Ys: []float64{1, 0.5}}
	if _, err := st.Save("harmonic", "euler", 1.0, 1.0, math.NaN(), traj); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Problem != "harmonic" {
		t.Errorf("expected problem 'harmonic', got '%s'", runs[0].Problem)
	}
	if runs[0].MaxError != -1 {
		t.Errorf("expected NaN max error stored as -1, got %g", runs[0].MaxError)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list for missing dir, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	meta := &RunMetadata{ID: "reference_rk4_1", Problem: "reference", Method: "rk4", H: 0.05, XEnd: 1.0}
	traj := ode.Trajectory{Xs: []float64{0, 0.05}, Ys: []float64{2, 1.95}}

	if err := ExportJSON(path, meta, traj); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var out ExportData
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.Problem != "reference" || out.Samples != 2 {
		t.Errorf("unexpected export payload: %+v", out)
	}
}
