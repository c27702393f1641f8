package dummy

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockClient(t *testing.T) {
	t.Run("no looping", func(t *testing.T) {
		slices := [][]byte{
			[]byte("Hello"), []byte("world!"),
		}
		client := NewMockClient(slices...)

		for _, slice := range slices {
			got, err := client.Read()
			require.NoError(t, err)
			require.Equal(t, string(slice), string(got))
		}

		_, err := client.Read()
		require.EqualError(t, err, io.EOF.Error())
	})

	t.Run("looped slices", func(t *testing.T) {
		slices := [][]byte{
			[]byte("Hello"), []byte("world"), []byte("!"),
		}
		client := NewMockClient(slices...).LoopReads()
		for i := 0; i < len(slices)*2; i++ {
			data, err := client.Read()
			require.NoError(t, err)
			require.Equal(t, string(slices[i%len(slices)]), string(data))
		}
	})

	t.Run("pushback", func(t *testing.T) {
		client := NewMockClient([]byte("Hello, world!"))
		data, err := client.Read()
		require.NoError(t, err)
		client.Pushback(data[7:])

		data, err = client.Read()
		require.NoError(t, err)
		require.Equal(t, "world!", string(data))
		require.Equal(t, 1, client.Reads())
	})

	t.Run("chunked", func(t *testing.T) {
		client := NewChunkedClient("abcdefg", 3)
		var got []string
		for {
			data, err := client.Read()
			if err != nil {
				require.ErrorIs(t, err, io.EOF)
				break
			}

			got = append(got, string(data))
		}

		require.Equal(t, []string{"abc", "def", "g"}, got)
	})

	t.Run("eof with the last piece", func(t *testing.T) {
		client := NewMockClient([]byte("Hello"), []byte("world")).EOFWithLast()
		data, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, "Hello", string(data))

		data, err = client.Read()
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, "world", string(data))

		data, err = client.Read()
		require.ErrorIs(t, err, io.EOF)
		require.Empty(t, data)
	})

	t.Run("journaling", func(t *testing.T) {
		client := NewMockClient()
		_, err := client.Write([]byte("HTTP/1.1 200 OK\r\n"))
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1 200 OK\r\n", client.Written())

		require.NoError(t, client.Close())
		require.True(t, client.Closed())
		_, err = client.Write([]byte("late"))
		require.Error(t, err)
	})
}
