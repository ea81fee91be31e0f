package export

import (
	"io"

	"github.com/iksnae/agent-workspace/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports the bootstrap set in YAML format
type YAMLExporter struct{}

// Export writes the files as a YAML document
func (e *YAMLExporter) Export(files []internal.WorkspaceBootstrapFile, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(files)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
