package internal

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed templates
var templateFS embed.FS

// SeedFileName is the one-time onboarding document, created only when a
// brand-new workspace is seeded and never recreated afterwards
const SeedFileName = "BOOTSTRAP.md"

// requiredTemplates are the documents recreated whenever they are missing,
// in catalog order. The seed document is deliberately not in this list.
var requiredTemplates = []string{
	"AGENTS.md",
	"IDENTITY.md",
	"USER.md",
	"TOOLS.md",
	"HEARTBEAT.md",
}

func templateContent(name string) ([]byte, error) {
	data, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, &TemplateError{Name: name, Err: err}
	}
	return data, nil
}

// EnsureTemplateFiles creates any required template documents missing from
// the workspace and returns the names it created. Existing files are never
// touched; users customize them.
func EnsureTemplateFiles(dir string) ([]string, error) {
	var created []string
	for _, name := range requiredTemplates {
		wrote, err := writeTemplateIfMissing(dir, name)
		if err != nil {
			return created, err
		}
		if wrote {
			created = append(created, name)
		}
	}
	return created, nil
}

// CreateSeedFile materializes the seed document when absent and reports
// whether it wrote anything
func CreateSeedFile(dir string) (bool, error) {
	return writeTemplateIfMissing(dir, SeedFileName)
}

func writeTemplateIfMissing(dir, name string) (bool, error) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	content, err := templateContent(name)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, &TemplateError{Name: name, Err: err}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, &TemplateError{Name: name, Err: err}
	}

	LogDebug("Created template document %s", path)
	return true, nil
}
