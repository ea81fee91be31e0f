package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvAgentHome overrides the home directory used to derive the default
	// workspace location
	EnvAgentHome = "AGENT_HOME"

	// EnvProfile selects the active profile document
	EnvProfile = "AGENT_PROFILE"

	// DefaultProfile is the reserved selector value meaning "no profile"
	DefaultProfile = "default"

	// DefaultWorkspaceDirName is the workspace directory created under the
	// user's home directory when no explicit workspace is given
	DefaultWorkspaceDirName = ".agent-workspace"

	// ConfigDirName is the hidden configuration subdirectory inside a workspace
	ConfigDirName = ".agent"

	// StateFileName is the persisted workspace state record inside ConfigDirName
	StateFileName = "state.json"

	// JournalFileName is the activation journal database inside ConfigDirName
	JournalFileName = "activity.db"

	// MemoryDirName is the memory subdirectory used as an existence signal
	MemoryDirName = "memory"
)

// WorkspacePaths holds the resolved paths inside an agent workspace
type WorkspacePaths struct {
	Root      string // workspace root directory
	ConfigDir string // hidden configuration subdirectory
	StateFile string // workspace state JSON record
	Journal   string // activation journal database
	MemoryDir string // memory subdirectory (existence signal only)
}

// NewWorkspacePaths builds the path set for a workspace root
func NewWorkspacePaths(root string) WorkspacePaths {
	configDir := filepath.Join(root, ConfigDirName)
	return WorkspacePaths{
		Root:      root,
		ConfigDir: configDir,
		StateFile: filepath.Join(configDir, StateFileName),
		Journal:   filepath.Join(configDir, JournalFileName),
		MemoryDir: filepath.Join(root, MemoryDirName),
	}
}

// ResolveWorkspacePath resolves the workspace root, preferring an explicit
// override (e.g. a --workspace flag) over the default location
func ResolveWorkspacePath(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}
	return DefaultWorkspacePath()
}

// DefaultWorkspacePath returns the default workspace location under the
// user's home directory. AGENT_HOME overrides the home directory.
func DefaultWorkspacePath() (string, error) {
	home := os.Getenv(EnvAgentHome)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
	}
	return filepath.Join(home, DefaultWorkspaceDirName), nil
}

// ActiveProfile returns the profile selector from the environment, or ""
// when no profile is active (unset or the reserved default value)
func ActiveProfile() string {
	profile := os.Getenv(EnvProfile)
	if profile == DefaultProfile {
		return ""
	}
	return profile
}

// ProfileFileName returns the profile document name for a selector value
func ProfileFileName(selector string) string {
	return fmt.Sprintf("PROFILE.%s.md", selector)
}
