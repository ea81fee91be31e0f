package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/agent-workspace/internal"
)

// JSONExporter exports the bootstrap set as a single JSON array
type JSONExporter struct{}

// Export writes the files as indented JSON
func (e *JSONExporter) Export(files []internal.WorkspaceBootstrapFile, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(files)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
