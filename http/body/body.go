// Package body reads request bodies for processors. The request pipeline itself never
// touches the body, so processors willing to read it construct a Reader over the same
// client the request came from.
package body

import (
	"io"
	"strconv"
	"strings"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/netserver/config"
	"github.com/indigo-web/netserver/errors"
	"github.com/indigo-web/netserver/http"
	"github.com/indigo-web/netserver/transport"
	"github.com/indigo-web/utils/strcomp"
)

type Reader struct {
	client    transport.Client
	chunked   *chunkedbody.Parser
	trailer   bool
	remaining uint64
	received  uint64
	maxSize   uint64
	started   bool
	done      bool
}

// New prepares a Reader for the request body, which is either chunked, sized via
// Content-Length or empty. Header names are matched case-insensitively here, as
// the HTTP semantics require.
func New(request *http.Request, client transport.Client, cfg config.Body) (*Reader, error) {
	r := &Reader{
		client:  client,
		maxSize: cfg.MaxSize,
	}

	encodings, err := values(request.Headers, "Transfer-Encoding")
	if err != nil {
		return nil, err
	}

	if isChunked(encodings) {
		r.chunked = chunkedbody.NewParser(chunkedbody.DefaultSettings())
		r.trailer = has(request.Headers, "Trailer")
		return r, nil
	}

	lengths, err := values(request.Headers, "Content-Length")
	if err != nil {
		return nil, err
	}

	length, err := contentLength(lengths)
	if err != nil {
		return nil, err
	}

	if length > r.maxSize {
		return nil, errors.ErrBodyTooLarge
	}

	r.remaining = length
	r.done = length == 0

	return r, nil
}

// Read returns the next piece of the body. The piece is valid until the next call only.
// io.EOF is returned once the body is over.
func (r *Reader) Read() ([]byte, error) {
	r.started = true
	if r.done {
		return nil, io.EOF
	}

	if r.chunked != nil {
		return r.readChunked()
	}

	data, err := r.fetch()
	if err != nil {
		return nil, err
	}

	if uint64(len(data)) > r.remaining {
		r.client.Pushback(data[r.remaining:])
		data = data[:r.remaining]
	}

	r.remaining -= uint64(len(data))
	r.done = r.remaining == 0

	return data, nil
}

func (r *Reader) readChunked() ([]byte, error) {
	for {
		data, err := r.fetch()
		if err != nil {
			return nil, err
		}

		chunk, extra, err := r.chunked.Parse(data, r.trailer)
		switch err {
		case nil:
		case io.EOF:
			r.done = true
		default:
			return nil, err
		}

		if len(extra) > 0 {
			r.client.Pushback(extra)
		}

		r.received += uint64(len(chunk))
		if r.received > r.maxSize {
			return nil, errors.ErrBodyTooLarge
		}

		if len(chunk) > 0 || r.done {
			return chunk, nil
		}
	}
}

// fetch reads the client. Data returned together with an error is passed through; the
// connection reports the error again on the next read, once nothing is pending.
func (r *Reader) fetch() ([]byte, error) {
	data, err := r.client.Read()
	if err != nil && len(data) == 0 {
		return nil, unexpected(err)
	}

	return data, nil
}

// Bytes reads the whole body. It fails with errors.ErrBodyRead if the body was
// already read partially or completely.
func (r *Reader) Bytes() ([]byte, error) {
	if r.started {
		return nil, errors.ErrBodyRead
	}

	var body []byte

	for {
		data, err := r.Read()
		body = append(body, data...)

		switch err {
		case nil:
		case io.EOF:
			return body, nil
		default:
			return nil, err
		}
	}
}

// Discard reads the body out without storing it, so the next request on the connection
// can be read.
func (r *Reader) Discard() error {
	for {
		_, err := r.Read()
		switch err {
		case nil:
		case io.EOF:
			return nil
		default:
			return err
		}
	}
}

// unexpected distinguishes the stream end in the middle of the body from the body end.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}

// values returns the values of the header, the name being matched case-insensitively.
// The same header sent under differently cased names has no defined order, so it's
// rejected.
func values(headers http.Headers, name string) ([]string, error) {
	var (
		result []string
		found  bool
	)

	for key, vals := range headers {
		if !strcomp.EqualFold(key, name) {
			continue
		}

		if found {
			return nil, errors.ErrAmbiguousHeader
		}

		found, result = true, vals
	}

	return result, nil
}

func has(headers http.Headers, name string) bool {
	for key := range headers {
		if strcomp.EqualFold(key, name) {
			return true
		}
	}

	return false
}

func isChunked(encodings []string) bool {
	if len(encodings) == 0 {
		return false
	}

	tokens := strings.Split(encodings[len(encodings)-1], ",")
	return strcomp.EqualFold(strings.TrimSpace(tokens[len(tokens)-1]), "chunked")
}

// contentLength accepts repeated but equal values only.
func contentLength(lengths []string) (uint64, error) {
	var length uint64

	for i, value := range lengths {
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil || (i > 0 && n != length) {
			return 0, errors.ErrBadLength
		}

		length = n
	}

	return length, nil
}
