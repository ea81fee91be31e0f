package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/agent-workspace/internal"
)

// MarkdownExporter concatenates the bootstrap set into one readable
// markdown document, the way the loaded files appear inside a session
type MarkdownExporter struct{}

// Export writes the files with per-document separators
func (e *MarkdownExporter) Export(files []internal.WorkspaceBootstrapFile, w io.Writer) error {
	for i, file := range files {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n---\n\n"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "<!-- %s -->\n\n", file.Name); err != nil {
			return err
		}

		if file.Missing {
			if _, err := fmt.Fprintf(w, "*(required document %s is missing)*\n", file.Name); err != nil {
				return err
			}
			continue
		}

		content := file.Content
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if _, err := fmt.Fprint(w, content); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
