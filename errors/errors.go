package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrFraming is the category of every error returned while isolating the request block
	// from the stream. Such requests are dropped silently.
	ErrFraming = errors.New("framing aborted")
	// ErrParse is the category of every grammar violation in an already framed block.
	ErrParse = errors.New("malformed request")

	ErrNoProtocol      = fmt.Errorf("%w: request line carries no HTTP version", ErrFraming)
	ErrBadHeaderLine   = fmt.Errorf("%w: line is neither a header nor the end of headers", ErrFraming)
	ErrIncomplete      = fmt.Errorf("%w: stream ended before the end of headers", ErrFraming)
	ErrBlockTooLarge   = fmt.Errorf("%w: request line and headers are too large", ErrFraming)
	ErrBodyTooLarge    = errors.New("request body is too large")
	ErrBadLength       = errors.New("malformed Content-Length")
	ErrBodyRead        = errors.New("body has been already read")
	ErrAmbiguousHeader = errors.New("header is repeated under differently cased names")
	ErrNoProcessor     = &ConfigError{Reason: "no HTTP request processor given"}
	ErrNoCertificates  = &ConfigError{Reason: "no certificates were passed"}
	ErrBadCertificate  = &ConfigError{Reason: "one or more passed certificates are empty"}
)

// ConfigError is returned while setting up the application, before any connection is
// accepted.
type ConfigError struct {
	Reason string
}

func (c *ConfigError) Error() string {
	return "bad configuration: " + c.Reason
}

// Parse returns a grammar violation found at the given offset of the request block.
func Parse(offset int, format string, args ...any) error {
	return fmt.Errorf("%w: at %d: %s", ErrParse, offset, fmt.Sprintf(format, args...))
}
