package config

import (
	"time"
)

type (
	Server struct {
		// Host is used when the address passed to the App has no host part.
		Host string
		// Port is used when the address passed to the App has no port part.
		Port uint16
	}

	Block struct {
		// MaxSize limits the request line and all the header lines together, including the
		// terminating blank line. A client exceeding it is dropped.
		MaxSize int
		// Prealloc is the initial capacity of the buffer accumulating the block.
		Prealloc int
	}

	Body struct {
		// MaxSize describes the maximal size of a body, that can be read via http/body.
		// Reading a bigger body results in errors.ErrBodyTooLarge.
		MaxSize uint64
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
		// MaxConnections is the number of simultaneously served connections per transport.
		// Accepting new ones is paused until one of the current finishes.
		MaxConnections int
	}
)

// Config holds settings used across various parts of netserver, mainly restrictions,
// limitations and pre-allocations.
//
// Always modify defaults (returned via Default()) instead of initializing the config
// manually, as zero values are mostly not meaningful.
type Config struct {
	Server Server
	Block  Block
	Body   Body
	NET    NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Server: Server{
			Host: "localhost",
			Port: 8080,
		},
		Block: Block{
			// request line and headers of an ordinary request fit into 1kb. Big cookies
			// are the main reason to allow more.
			MaxSize:  64 * 1024,
			Prealloc: 1024,
		},
		Body: Body{
			MaxSize: 512 * 1024 * 1024, // 512 megabytes
		},
		NET: NET{
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
			MaxConnections:            256,
		},
	}
}
