package internal

import (
	"errors"
	"fmt"
)

const (
	// ConnectivityMessage is what the transcript shows for any transport failure
	ConnectivityMessage = "Failed to connect to the server. Make sure the backend is running."

	// FallbackErrorMessage is used when the backend reports failure without text
	FallbackErrorMessage = "An error occurred"
)

var (
	// ErrAwaiting is returned by Submit while a request is in flight
	ErrAwaiting = errors.New("a question is already being answered")

	// ErrEmptyQuestion is returned by Submit for blank input
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrClosed is returned by Submit after the transcript was closed
	ErrClosed = errors.New("transcript is closed")
)

// TransportError represents a request that could not reach the backend or
// whose response could not be parsed
type TransportError struct {
	Op  string // "ask", "clear", "health"
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage hides the transport cause behind the fixed connectivity text
func (e *TransportError) UserMessage() string {
	return ConnectivityMessage
}

// ApplicationError represents a backend response flagged as unsuccessful
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("application error: %s", e.UserMessage())
}

// UserMessage returns the server-supplied text or the generic fallback
func (e *ApplicationError) UserMessage() string {
	if e.Message == "" {
		return FallbackErrorMessage
	}
	return e.Message
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// UserMessage maps an ask failure to the text recorded in the transcript.
// Errors that are neither transport nor application errors are treated as
// transport failures so raw causes never reach the user.
func UserMessage(err error) string {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.UserMessage()
	}
	return ConnectivityMessage
}
