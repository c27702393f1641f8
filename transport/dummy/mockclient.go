package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/netserver/transport"
	"github.com/indigo-web/utils/unreader"
)

var _ transport.Client = new(Client)

// Client serves the data it was initialised with, chunk by chunk, and returns io.EOF
// afterwards, unless looped. It also tracks all the written data, making it thereby a
// universal mock suitable for most of the tests.
type Client struct {
	unreader *unreader.Unreader
	closed   bool
	loop     bool
	eofLast  bool
	pointer  int
	reads    int
	written  []byte
	data     [][]byte
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		unreader: new(unreader.Unreader),
		data:     data,
	}
}

// NewChunkedClient splits the text into pieces of n bytes each. The last one may be shorter.
func NewChunkedClient(text string, n int) *Client {
	var parts [][]byte

	for i := 0; i < len(text); i += n {
		parts = append(parts, []byte(text[i:min(i+n, len(text))]))
	}

	return NewMockClient(parts...)
}

func (c *Client) Read() ([]byte, error) {
	if c.closed {
		return nil, io.EOF
	}

	return c.unreader.PendingOr(func() ([]byte, error) {
		if c.pointer >= len(c.data) {
			if !c.loop || len(c.data) == 0 {
				return nil, io.EOF
			}

			c.pointer = 0
		}

		piece := c.data[c.pointer]
		c.pointer++
		c.reads++

		if c.eofLast && !c.loop && c.pointer == len(c.data) {
			return piece, io.EOF
		}

		return piece, nil
	})
}

func (c *Client) Pushback(takeback []byte) {
	c.unreader.Unread(takeback)
}

func (c *Client) Write(p []byte) (int, error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	c.written = append(c.written, p...)
	return len(p), nil
}

func (c *Client) Conn() net.Conn {
	return new(Conn).Nop()
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// LoopReads makes the client start over the data instead of returning io.EOF.
func (c *Client) LoopReads() *Client {
	c.loop = true
	return c
}

// EOFWithLast makes the client return the last piece together with io.EOF, the way
// some net.Conn implementations (crypto/tls among them) do.
func (c *Client) EOFWithLast() *Client {
	c.eofLast = true
	return c
}

// Written returns everything written into the client so far.
func (c *Client) Written() string {
	return string(c.written)
}

// Reads returns the number of chunks taken from the initial data, pushbacks excluded.
func (c *Client) Reads() int {
	return c.reads
}

func (c *Client) Closed() bool {
	return c.closed
}
