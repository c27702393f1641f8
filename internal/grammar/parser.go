// Package grammar parses a framed request block into the raw request tree.
//
//	request        = request-line *( header-line ) CRLF
//	request-line   = method SP request-target SP HTTP-version CRLF
//	HTTP-version   = "HTTP/" DIGIT "." DIGIT
//	header-line    = field-name ":" OWS field-value OWS CRLF
//
// method and field-name are tokens. The request-target is either "*", origin-form,
// absolute-form or authority-form.
package grammar

import (
	"strings"

	"github.com/indigo-web/netserver/errors"
	"github.com/indigo-web/netserver/http"
	"github.com/indigo-web/netserver/http/proto"
	"github.com/indigo-web/utils/uf"
	"golang.org/x/net/http/httpguts"
)

type parser struct {
	data string
	pos  int
}

// Parse returns the request tree of the block. Any grammar violation results in an error
// falling under errors.ErrParse. The returned strings share memory with the block,
// therefore it must not be modified afterwards.
func Parse(block []byte) (request http.RawRequest, err error) {
	p := parser{data: uf.B2S(block)}

	if request.Method, err = p.method(); err != nil {
		return request, err
	}

	if err = p.expect(" "); err != nil {
		return request, err
	}

	start := p.pos
	request.Target = p.until(' ')
	if request.URI, err = target(request.Target, start); err != nil {
		return request, err
	}

	if err = p.expect(" "); err != nil {
		return request, err
	}

	if request.Version, err = p.version(); err != nil {
		return request, err
	}

	if err = p.expect("\r\n"); err != nil {
		return request, err
	}

	for !p.consume("\r\n") {
		if p.pos >= len(p.data) {
			return request, errors.Parse(p.pos, "unexpected end of headers")
		}

		header, err := p.header()
		if err != nil {
			return request, err
		}

		request.Headers = append(request.Headers, header)
	}

	if p.pos != len(p.data) {
		return request, errors.Parse(p.pos, "trailing data after headers")
	}

	return request, nil
}

func (p *parser) method() (string, error) {
	method := p.token()
	if len(method) == 0 {
		return "", errors.Parse(p.pos, "method must be a non-empty token")
	}

	return method, nil
}

func (p *parser) version() (string, error) {
	start := p.pos
	if err := p.expect(proto.Prefix); err != nil {
		return "", err
	}

	version := p.data[p.pos:min(p.pos+len("x.x"), len(p.data))]
	if len(version) != len("x.x") || !digitChars[version[0]] || version[1] != '.' ||
		!digitChars[version[2]] {
		return "", errors.Parse(start, "malformed HTTP version")
	}

	p.pos += len(version)
	return version, nil
}

func (p *parser) header() (header http.Header, err error) {
	start := p.pos
	header.Name = p.token()
	if !httpguts.ValidHeaderFieldName(header.Name) {
		return header, errors.Parse(start, "header name must be a non-empty token")
	}

	if err = p.expect(":"); err != nil {
		return header, err
	}

	valueStart := p.pos
	end := strings.Index(p.data[p.pos:], "\r\n")
	if end == -1 {
		return header, errors.Parse(p.pos, "header line is not terminated by CRLF")
	}

	header.Value = trimOWS(p.data[p.pos : p.pos+end])
	p.pos += end + len("\r\n")

	if !httpguts.ValidHeaderFieldValue(header.Value) {
		return header, errors.Parse(valueStart, "bad header %s value", header.Name)
	}

	return header, nil
}

// token consumes the longest run of token characters.
func (p *parser) token() string {
	start := p.pos
	for p.pos < len(p.data) && httpguts.IsTokenRune(rune(p.data[p.pos])) {
		p.pos++
	}

	return p.data[start:p.pos]
}

// until consumes everything up to, but not including, the delimiter or end of line.
func (p *parser) until(delim byte) string {
	start := p.pos
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case delim, '\r', '\n':
			return p.data[start:p.pos]
		}

		p.pos++
	}

	return p.data[start:]
}

func (p *parser) consume(literal string) bool {
	if strings.HasPrefix(p.data[p.pos:], literal) {
		p.pos += len(literal)
		return true
	}

	return false
}

func (p *parser) expect(literal string) error {
	if !p.consume(literal) {
		return errors.Parse(p.pos, "expected %q", literal)
	}

	return nil
}

func trimOWS(str string) string {
	return strings.Trim(str, " \t")
}
