package obs

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStdLogger(t *testing.T) {
	buff := new(bytes.Buffer)
	logger := StdLogger{L: log.New(buff, "", 0), Min: Info}

	logger.Logf(Debug, "hidden %d", 1)
	require.Empty(t, buff.String())

	logger.Logf(Warn, "shown %d", 2)
	require.Equal(t, "[WARN] shown 2\n", buff.String())
}

func TestNilLogger(t *testing.T) {
	require.NotPanics(t, func() {
		StdLogger{}.Logf(Error, "nowhere")
		NopLogger{}.Logf(Error, "nowhere")
	})
}
