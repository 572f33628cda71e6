package types

import (
	"errors"
	"fmt"
)

// ErrPathResolution is returned when a per-application directory cannot
// be determined for the current platform
type ErrPathResolution struct {
	Dir    string
	Reason string
}

func (e *ErrPathResolution) Error() string {
	return fmt.Sprintf("could not resolve %s directory: %s", e.Dir, e.Reason)
}

// From checks if the given error is an ErrPathResolution
func (e *ErrPathResolution) From(err error) bool {
	var pathResolution *ErrPathResolution
	return errors.As(err, &pathResolution)
}

// ErrCommandNotFound is returned when a command name has no registered handler
type ErrCommandNotFound struct {
	Command string
}

func (e *ErrCommandNotFound) Error() string {
	return fmt.Sprintf("command not found: %s", e.Command)
}

// From checks if the given error is an ErrCommandNotFound
func (e *ErrCommandNotFound) From(err error) bool {
	var commandNotFound *ErrCommandNotFound
	return errors.As(err, &commandNotFound)
}

// ErrCommandAlreadyRegistered is returned when two handlers claim the same name
type ErrCommandAlreadyRegistered struct {
	Command string
}

func (e *ErrCommandAlreadyRegistered) Error() string {
	return fmt.Sprintf("command already registered: %s", e.Command)
}

// ErrInvalidPayload is returned when a command payload fails decoding or validation
type ErrInvalidPayload struct {
	Command string
	Reason  string
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid payload for command %s: %s", e.Command, e.Reason)
}

// From checks if the given error is an ErrInvalidPayload
func (e *ErrInvalidPayload) From(err error) bool {
	var invalidPayload *ErrInvalidPayload
	return errors.As(err, &invalidPayload)
}
