package bjpeg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitWriterPutBitCodePacksMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(NewWriterSink(&buf))
	bw.putBitCode(bitCode{code: 0b1011, bits: 4})
	bw.putBitCode(bitCode{code: 0b0101, bits: 4})
	require.NoError(t, bw.err)
	assert.Equal(t, []byte{0b10110101}, buf.Bytes())
}

func TestBitWriterStuffsFF(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(NewWriterSink(&buf))
	bw.putBitCode(bitCode{code: 0xFF, bits: 8})
	require.NoError(t, bw.err)
	assert.Equal(t, []byte{0xFF, 0x00}, buf.Bytes())
}

func TestBitWriterFlushPadsWithOnes(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(NewWriterSink(&buf))
	bw.putBitCode(bitCode{code: 0b1, bits: 1})
	bw.flush()
	require.NoError(t, bw.err)
	// One data bit plus seven 1-bit pads make 0xFF, which is stuffed like
	// any other entropy-phase byte.
	assert.Equal(t, []byte{0b11111111, 0x00}, buf.Bytes())
}

func TestBitWriterMarkerBypassesStuffing(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(NewWriterSink(&buf))
	bw.marker(0xD8, 0)
	assert.Equal(t, []byte{0xFF, 0xD8, 0x00, 0x00}, buf.Bytes())
}

func TestBitWriterStopsAtFirstSinkError(t *testing.T) {
	wantErr := errors.New("disk full")
	calls := 0
	sink := SinkFunc(func(p []byte) error {
		calls++
		return wantErr
	})
	bw := newBitWriter(sink)
	bw.putBitCode(bitCode{code: 0xFF, bits: 8})
	bw.putBitCode(bitCode{code: 0xFF, bits: 8})
	assert.Equal(t, wantErr, bw.err)
	assert.Equal(t, 1, calls)
}
