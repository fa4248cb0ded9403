// Package errors provides standardized error handling for tvrename.
// It defines the error kinds a run can produce and helper functions for
// consistent error creation, wrapping, and classification.
package errors

import (
	"errors"
	"fmt"
)

// As finds the first error in err's chain that matches target
var As = errors.As

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// PathNotFound aborts the run: the target directory does not exist.
	PathNotFound
	// DirectoryUnreadable: the directory exists but could not be listed.
	DirectoryUnreadable
	// EntryUnreadable: a single directory entry could not be inspected.
	EntryUnreadable
	// NoExtensionDetected: auto-detection found no extensioned file.
	NoExtensionDetected
	// RenameFailure: the filesystem refused one rename.
	RenameFailure
	// InvalidConfig: flags or the defaults file hold an unusable value.
	InvalidConfig
)

var kindNames = map[ErrorKind]string{
	Unknown:             "unknown",
	PathNotFound:        "path_not_found",
	DirectoryUnreadable: "directory_unreadable",
	EntryUnreadable:     "entry_unreadable",
	NoExtensionDetected: "no_extension_detected",
	RenameFailure:       "rename_failure",
	InvalidConfig:       "invalid_config",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinel errors usable with errors.Is; matching is by kind only.
var (
	ErrPathNotFound        = NewFileError("path not found", "", PathNotFound, nil)
	ErrDirectoryUnreadable = NewFileError("failed to read directory", "", DirectoryUnreadable, nil)
	ErrNoExtension         = &ApplicationError{msg: "no extension found", kind: NoExtensionDetected}
	ErrRenameFailure       = NewFileError("rename failed", "", RenameFailure, nil)
	ErrInvalidConfig       = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// Is matches any application error of the same, known kind.
func (e *ApplicationError) Is(target error) bool {
	k, ok := target.(interface{ Kind() ErrorKind })
	return ok && e.kind != Unknown && k.Kind() == e.kind
}

// FileError represents errors related to a filesystem path
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// KindOf returns the first known kind found in err's chain.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsPathNotFound checks if the error is a path not found error
func IsPathNotFound(err error) bool {
	return errors.Is(err, ErrPathNotFound)
}

// IsDirectoryUnreadable checks if the error is a directory read failure
func IsDirectoryUnreadable(err error) bool {
	return errors.Is(err, ErrDirectoryUnreadable)
}

// IsRenameFailure checks if the error is a failed rename
func IsRenameFailure(err error) bool {
	return errors.Is(err, ErrRenameFailure)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr) && errors.Is(configErr, ErrInvalidConfig)
}
