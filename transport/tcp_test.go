package transport

import (
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/indigo-web/netserver/config"
	"github.com/stretchr/testify/require"
)

func getNET(maxConns int) config.NET {
	cfg := config.Default().NET
	cfg.MaxConnections = maxConns
	cfg.AcceptLoopInterruptPeriod = 20 * time.Millisecond

	return cfg
}

func TestTCP(t *testing.T) {
	t.Run("connections cap", func(t *testing.T) {
		tcp := NewTCP()
		require.NoError(t, tcp.Bind("localhost:0"))

		var (
			entered = new(atomic.Int32)
			release = make(chan struct{})
		)

		listenErr := runParallel(func() error {
			return tcp.Listen(getNET(1), func(net.Conn) {
				entered.Add(1)
				<-release
			})
		})

		for range 3 {
			conn, err := net.Dial("tcp", tcp.Addr().String())
			require.NoError(t, err)
			defer conn.Close()
		}

		time.Sleep(100 * time.Millisecond)
		require.Equal(t, int32(1), entered.Load())

		close(release)
		require.Eventually(t, func() bool {
			return entered.Load() == 3
		}, time.Second, 10*time.Millisecond)

		tcp.Stop()
		tcp.Wait()
		tcp.Close()
		require.NoError(t, <-listenErr)
	})

	t.Run("connection is closed after callback", func(t *testing.T) {
		tcp := NewTCP()
		require.NoError(t, tcp.Bind("localhost:0"))
		listenErr := runParallel(func() error {
			return tcp.Listen(getNET(4), func(conn net.Conn) {
				_, _ = conn.Write([]byte("bye"))
			})
		})

		conn, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		defer conn.Close()

		buff := make([]byte, 16)
		n, err := conn.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "bye", string(buff[:n]))

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, err = conn.Read(buff)
		require.Error(t, err)

		tcp.Stop()
		tcp.Wait()
		tcp.Close()
		require.NoError(t, <-listenErr)
	})
}

func TestClient(t *testing.T) {
	server, clientConn := net.Pipe()
	defer clientConn.Close()

	client := NewClient(server, time.Second, make([]byte, 64))
	go func() {
		_, _ = clientConn.Write([]byte("Hello, world!"))
	}()

	data, err := client.Read()
	require.NoError(t, err)
	require.Equal(t, "Hello, world!", string(data))

	client.Pushback(data[7:])
	data, err = client.Read()
	require.NoError(t, err)
	require.Equal(t, "world!", string(data))

	require.NoError(t, client.Close())
}
