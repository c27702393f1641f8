package dummy

import (
	"io"
	"net"
	"time"
)

// Conn is a net.Conn that never returns any data and optionally records the written one.
type Conn struct {
	Data []byte
	nop  bool
}

func (c *Conn) Read([]byte) (n int, err error) {
	return 0, io.EOF
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if !c.nop {
		c.Data = append(c.Data, b...)
	}

	return len(b), nil
}

func (c *Conn) Close() error                     { return nil }
func (c *Conn) LocalAddr() net.Addr              { return nil }
func (c *Conn) RemoteAddr() net.Addr             { return nil }
func (c *Conn) SetDeadline(time.Time) error      { return nil }
func (c *Conn) SetReadDeadline(time.Time) error  { return nil }
func (c *Conn) SetWriteDeadline(time.Time) error { return nil }

// Nop disables recording the written data.
func (c *Conn) Nop() *Conn {
	c.nop = true
	return c
}
