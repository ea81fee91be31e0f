package internal

import "strings"

// SessionRole is the role segment of a session identifier
type SessionRole string

const (
	SessionRoleMain     SessionRole = "main"
	SessionRoleSubagent SessionRole = "subagent"
	SessionRoleCron     SessionRole = "cron"
)

// ParseSessionRole extracts the role from a colon-delimited session
// identifier such as "agent:main", "agent:subagent:42" or "agent:cron:7".
// Anything unrecognized is treated as a main session.
func ParseSessionRole(sessionID string) SessionRole {
	parts := strings.Split(sessionID, ":")
	if len(parts) < 2 {
		return SessionRoleMain
	}
	switch SessionRole(parts[1]) {
	case SessionRoleSubagent:
		return SessionRoleSubagent
	case SessionRoleCron:
		return SessionRoleCron
	default:
		return SessionRoleMain
	}
}

// FilterBootstrapFilesForSession applies per-role inclusion rules to a
// loaded bootstrap set. The current policy retains every entry — profile
// documents included — for all roles; this is the extension point for
// role-specific exclusions, so new entry categories get a predicate here
// rather than a branch in the loader.
func FilterBootstrapFilesForSession(files []WorkspaceBootstrapFile, sessionID string) []WorkspaceBootstrapFile {
	role := ParseSessionRole(sessionID)

	filtered := make([]WorkspaceBootstrapFile, 0, len(files))
	for _, file := range files {
		if includeForRole(file, role) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func includeForRole(_ WorkspaceBootstrapFile, _ SessionRole) bool {
	return true
}
