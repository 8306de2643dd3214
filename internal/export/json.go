package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/skoret/odelab/internal/storage"
)

type RunData struct {
	Meta   storage.RunMetadata `json:"meta"`
	Times  []float64           `json:"times"`
	States [][]float64         `json:"states"`
}

func WriteJSON(w io.Writer, meta storage.RunMetadata, times []float64, states [][]float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RunData{Meta: meta, Times: times, States: states})
}

func SaveJSON(path string, meta storage.RunMetadata, times []float64, states [][]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, times, states)
}
