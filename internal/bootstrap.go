package internal

import (
	"os"
	"path/filepath"
)

// Environment carries the environment inputs consulted by the loader
type Environment struct {
	// Profile is the active profile selector, "" when none is active
	Profile string
}

// EnvironmentFromOS builds the loader environment from process env vars
func EnvironmentFromOS() Environment {
	return Environment{Profile: ActiveProfile()}
}

// memoryCandidates lists the memory document names in preference order
var memoryCandidates = []string{"MEMORY.md", "memory.md"}

// BootstrapFileSpec is one static catalog entry. Required entries always
// appear in the loaded result, with Missing=true when absent. Conditional
// entries are omitted entirely when inactive or when none of their
// candidate sources exist.
type BootstrapFileSpec struct {
	Name     string
	Required bool

	// sources returns candidate filenames in preference order for this
	// load; an empty list deactivates a conditional entry
	sources func(env Environment) []string
}

func staticSource(name string) func(Environment) []string {
	return func(Environment) []string { return []string{name} }
}

// bootstrapCatalog is walked in order on every load. The profile entry
// sits after USER.md and before HEARTBEAT.md.
var bootstrapCatalog = []BootstrapFileSpec{
	{Name: SeedFileName, sources: staticSource(SeedFileName)},
	{Name: "AGENTS.md", Required: true, sources: staticSource("AGENTS.md")},
	{Name: "IDENTITY.md", Required: true, sources: staticSource("IDENTITY.md")},
	{Name: "USER.md", Required: true, sources: staticSource("USER.md")},
	{Name: "PROFILE", sources: func(env Environment) []string {
		if env.Profile == "" {
			return nil
		}
		return []string{ProfileFileName(env.Profile)}
	}},
	{Name: "MEMORY.md", sources: func(Environment) []string { return memoryCandidates }},
	{Name: "TOOLS.md", Required: true, sources: staticSource("TOOLS.md")},
	{Name: "HEARTBEAT.md", Required: true, sources: staticSource("HEARTBEAT.md")},
}

// WorkspaceBootstrapFile is one document loaded for injection into a
// session. Missing=true means the document is required but absent — a
// signal the agent runtime is expected to surface.
type WorkspaceBootstrapFile struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
	Missing bool   `json:"missing" yaml:"missing"`
}

// LoadBootstrapFiles walks the catalog in order and loads the documents to
// inject into a session. Results are computed fresh on every call; nothing
// is cached, so candidate fallbacks re-resolve each time. Read failures
// other than absence are surfaced.
func LoadBootstrapFiles(dir string, env Environment) ([]WorkspaceBootstrapFile, error) {
	var files []WorkspaceBootstrapFile
	for _, spec := range bootstrapCatalog {
		file, ok, err := loadCatalogEntry(dir, spec, env)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, file)
		}
	}
	return files, nil
}

func loadCatalogEntry(dir string, spec BootstrapFileSpec, env Environment) (WorkspaceBootstrapFile, bool, error) {
	for _, name := range spec.sources(env) {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return WorkspaceBootstrapFile{}, false, &BootstrapError{Name: spec.Name, Path: path, Err: err}
		}
		return WorkspaceBootstrapFile{Name: name, Content: string(data)}, true, nil
	}

	if spec.Required {
		return WorkspaceBootstrapFile{Name: spec.Name, Missing: true}, true, nil
	}
	return WorkspaceBootstrapFile{}, false, nil
}
