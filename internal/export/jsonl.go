package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/agent-workspace/internal"
)

// JSONLExporter exports one JSON object per line, one line per document.
// This is the format agent runtimes pipe into their injection step.
type JSONLExporter struct{}

// Export writes each file as a single JSON line
func (e *JSONLExporter) Export(files []internal.WorkspaceBootstrapFile, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, file := range files {
		if err := enc.Encode(file); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
