// Package framer isolates the request line and the header lines from a client stream.
package framer

import (
	"bytes"
	"fmt"

	"github.com/indigo-web/netserver/config"
	"github.com/indigo-web/netserver/errors"
	"github.com/indigo-web/netserver/http/proto"
	"github.com/indigo-web/netserver/internal/buffer"
	"github.com/indigo-web/netserver/transport"
	"github.com/indigo-web/utils/uf"
)

const crlf = "\r\n"

// Frame reads the client line by line until the blank line terminating the headers and
// returns everything read up to and including it. The first line must carry an HTTP
// version, every other line must either look like a header (a colon followed by
// a space or a tab) or be the terminator itself.
//
// Bytes following the terminator are handed back to the client, so the next Read returns
// them untouched. All the returned errors fall under errors.ErrFraming.
func Frame(client transport.Client, cfg config.Block) ([]byte, error) {
	buff := buffer.New(cfg.Prealloc, cfg.MaxSize)
	requestLine := true

	for {
		data, err := client.Read()

		for len(data) > 0 {
			lf := bytes.IndexByte(data, '\n')
			if lf == -1 {
				if !buff.Append(data) {
					return nil, errors.ErrBlockTooLarge
				}

				break
			}

			if !buff.Append(data[:lf+1]) {
				return nil, errors.ErrBlockTooLarge
			}

			line, rest := buff.Finish(), data[lf+1:]

			switch {
			case requestLine:
				if !bytes.Contains(line, uf.S2B(proto.Prefix)) {
					pushback(client, rest)
					return nil, errors.ErrNoProtocol
				}

				requestLine = false
			case isHeaderLine(line):
			case uf.B2S(line) == crlf:
				pushback(client, rest)
				return buff.Bytes(), nil
			default:
				pushback(client, rest)
				return nil, errors.ErrBadHeaderLine
			}

			data = rest
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrIncomplete, err)
		}
	}
}

func isHeaderLine(line []byte) bool {
	return bytes.Contains(line, []byte(": ")) || bytes.Contains(line, []byte(":\t"))
}

func pushback(client transport.Client, rest []byte) {
	if len(rest) > 0 {
		client.Pushback(rest)
	}
}
