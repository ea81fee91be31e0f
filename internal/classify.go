package internal

import (
	"os"
	"path/filepath"
	"strings"
)

// WorkspaceClass classifies a directory's maturity as an agent workspace
type WorkspaceClass int

const (
	// WorkspaceNew means no state record and no evidence of prior use.
	// Covers both an empty directory and a partially populated one whose
	// contents carry no independent-use signal.
	WorkspaceNew WorkspaceClass = iota

	// WorkspacePreExisting means no state record but independent evidence
	// of prior use (memory content or version-control metadata)
	WorkspacePreExisting

	// WorkspaceTracked means a state record exists
	WorkspaceTracked
)

// String returns a human-readable name for the classification
func (c WorkspaceClass) String() string {
	switch c {
	case WorkspaceNew:
		return "new"
	case WorkspacePreExisting:
		return "pre-existing"
	case WorkspaceTracked:
		return "tracked"
	default:
		return "unknown"
	}
}

// ClassifyWorkspace classifies a directory as new, pre-existing-unmarked,
// or tracked. The probe is read-only and tolerates missing or unreadable
// subpaths by treating them as absent.
//
// Evidence of prior use is checked independently of the state record: a
// memory subdirectory, a memory document with non-trivial content, or a
// version-control metadata directory. Any one signal is sufficient. The
// template documents themselves are never inspected; users edit them, so
// their presence proves nothing about prior use.
func ClassifyWorkspace(dir string) WorkspaceClass {
	if StateFileExists(dir) {
		return WorkspaceTracked
	}

	if hasPriorUseEvidence(dir) {
		return WorkspacePreExisting
	}

	return WorkspaceNew
}

func hasPriorUseEvidence(dir string) bool {
	return hasMemoryDir(dir) || hasMemoryContent(dir) || hasVersionControl(dir)
}

func hasMemoryDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MemoryDirName))
	return err == nil && info.IsDir()
}

func hasMemoryContent(dir string) bool {
	for _, name := range memoryCandidates {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if len(strings.TrimSpace(string(data))) > 0 {
			return true
		}
	}
	return false
}

func hasVersionControl(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
