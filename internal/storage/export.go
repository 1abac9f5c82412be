package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/odelab/internal/ode"
)

type ExportData struct {
	ID       string    `json:"id"`
	Problem  string    `json:"problem"`
	Method   string    `json:"method"`
	H        float64   `json:"h"`
	XEnd     float64   `json:"x_end"`
	Samples  int       `json:"samples"`
	MaxError float64   `json:"max_error"`
	Xs       []float64 `json:"xs"`
	Ys       []float64 `json:"ys"`
}

func exportTo(w io.Writer, meta *RunMetadata, traj ode.Trajectory) error {
	data := ExportData{
		ID:       meta.ID,
		Problem:  meta.Problem,
		Method:   meta.Method,
		H:        meta.H,
		XEnd:     meta.XEnd,
		Samples:  len(traj.Xs),
		MaxError: meta.MaxError,
		Xs:       traj.Xs,
		Ys:       traj.Ys,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, meta *RunMetadata, traj ode.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return exportTo(file, meta, traj)
}

func ExportJSONStdout(meta *RunMetadata, traj ode.Trajectory) error {
	return exportTo(os.Stdout, meta, traj)
}
