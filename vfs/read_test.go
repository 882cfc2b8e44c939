package vfs

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_BoundaryExclusive(t *testing.T) {
	// An element is only read while remaining > elemSize, so an element that
	// would exactly exhaust the file is not read.
	s := NewStore()
	require.NoError(t, s.Register("f", []byte{1, 2, 3, 4, 5}, false))

	t.Run("exact-fit element is refused", func(t *testing.T) {
		h, err := s.Open("f")
		require.NoError(t, err)

		buf := make([]byte, 5)
		n, err := s.Read(h, buf, 5, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, int64(0), s.Tell(h))
	})

	t.Run("element leaving slack is read", func(t *testing.T) {
		h, err := s.Open("f")
		require.NoError(t, err)

		buf := make([]byte, 4)
		n, err := s.Read(h, buf, 4, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []byte{1, 2, 3, 4}, buf)
		assert.Equal(t, int64(4), s.Tell(h))
	})
}

func TestRead_StridedElements(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("f", []byte("aabbccdd"), false))
	h, err := s.Open("f")
	require.NoError(t, err)

	// Four 2-byte elements requested, but the last would exactly exhaust the
	// buffer, so only three are read.
	buf := make([]byte, 8)
	n, err := s.Read(h, buf, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "aabbcc", string(buf[:n*2]))
	assert.Equal(t, int64(6), s.Tell(h))

	// Nothing more fits.
	n, err = s.Read(h, buf, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRead_AdvancesAcrossCalls(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("f", []byte("abcdefgh"), false))
	h, err := s.Open("f")
	require.NoError(t, err)

	buf := make([]byte, 3)
	n, err := s.Read(h, buf, 3, 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, "abc", string(buf))

	n, err = s.Read(h, buf, 3, 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, "def", string(buf))
}

func TestRead_InvalidHandle(t *testing.T) {
	s := NewStore()

	buf := make([]byte, 4)
	n, err := s.Read(0, buf, 1, 4)
	require.ErrorIs(t, err, ErrInvalidHandle)
	assert.Equal(t, 0, n)
}

func TestRead_ShortBuffer(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("f", []byte("abcdefgh"), false))
	h, err := s.Open("f")
	require.NoError(t, err)

	buf := make([]byte, 3)
	_, err = s.Read(h, buf, 2, 2)
	require.ErrorIs(t, err, io.ErrShortBuffer)
}

func TestRead_DegenerateArguments(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("f", []byte("abc"), false))
	h, err := s.Open("f")
	require.NoError(t, err)

	buf := make([]byte, 4)
	for _, tc := range []struct{ size, count int }{{0, 1}, {1, 0}, {-1, 2}, {2, -1}} {
		n, err := s.Read(h, buf, tc.size, tc.count)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	}
}

func TestReadLine_StopsOnNewlineInclusive(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("f", []byte("ab\ncd"), false))
	h, err := s.Open("f")
	require.NoError(t, err)

	line, err := s.ReadLine(h, 10)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", string(line))
	assert.Equal(t, int64(3), s.Tell(h))

	line, err = s.ReadLine(h, 10)
	require.NoError(t, err)
	assert.Equal(t, "cd", string(line))
}

func TestReadLine_MaxChars(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("f", []byte("abcdefgh"), false))
	h, err := s.Open("f")
	require.NoError(t, err)

	// At most maxChars-1 bytes are returned.
	line, err := s.ReadLine(h, 4)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(line))
	assert.Equal(t, int64(3), s.Tell(h))
}

func TestReadLine_EndOfData(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("f", []byte("ab"), false))
	h, err := s.Open("f")
	require.NoError(t, err)

	line, err := s.ReadLine(h, 10)
	require.NoError(t, err)
	require.Equal(t, "ab", string(line))

	// Once the cursor reaches the end, line reads signal end of data rather
	// than returning an empty string.
	_, err = s.ReadLine(h, 10)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLine_EmptyFile(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("f", nil, false))
	h, err := s.Open("f")
	require.NoError(t, err)

	_, err = s.ReadLine(h, 10)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLine_InvalidHandle(t *testing.T) {
	s := NewStore()

	_, err := s.ReadLine(42, 10)
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func TestWrite_AlwaysZero(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("f", []byte("abc"), false))
	h, err := s.Open("f")
	require.NoError(t, err)

	n, err := s.Write(h, []byte("xyz"))
	require.ErrorIs(t, err, ErrReadOnly)
	assert.Equal(t, 0, n)

	// Contents are untouched.
	line, err := s.ReadLine(h, 10)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(line))
}
