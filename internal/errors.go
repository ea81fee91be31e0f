package internal

import "fmt"

// StateError represents errors reading or writing the workspace state record
type StateError struct {
	Path string
	Op   string // "read", "parse", "write"
	Err  error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// TemplateError represents errors materializing a workspace template document
type TemplateError struct {
	Name string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template error [%s]: %v", e.Name, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// BootstrapError represents errors loading a bootstrap catalog entry
type BootstrapError struct {
	Name string
	Path string
	Err  error
}

func (e *BootstrapError) Error() string {
	return fmt.Sprintf("bootstrap error [%s] %s: %v", e.Name, e.Path, e.Err)
}

func (e *BootstrapError) Unwrap() error {
	return e.Err
}

// JournalError represents errors accessing the activation journal
type JournalError struct {
	Path string
	Op   string // "open", "record", "query"
	Err  error
}

func (e *JournalError) Error() string {
	return fmt.Sprintf("journal error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *JournalError) Unwrap() error {
	return e.Err
}
