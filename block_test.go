package bjpeg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBlockConstantIsEOBOnly(t *testing.T) {
	t1 := buildTables(90)
	var block [blockSize]float32 // already centered on zero: a flat 128 pixel block

	var buf bytes.Buffer
	bw := newBitWriter(NewWriterSink(&buf))
	dc := encodeBlock(bw, &block, &t1.scaledLuma, &t1.huffLumaDC, &t1.huffLumaAC, 0)
	bw.flush()
	require.NoError(t, bw.err)

	assert.Equal(t, int32(0), dc)

	var want bitWriter
	var wantBuf bytes.Buffer
	want = *newBitWriter(NewWriterSink(&wantBuf))
	want.putBitCode(t1.huffLumaDC[0x00])
	want.putBitCode(t1.huffLumaAC[0x00])
	want.flush()
	require.NoError(t, want.err)

	assert.Equal(t, wantBuf.Bytes(), buf.Bytes())
}

func TestEncodeBlockDCFollowsPrev(t *testing.T) {
	t1 := buildTables(90)
	var block [blockSize]float32
	for i := range block {
		block[i] = 50
	}
	// encodeBlock transforms its block in place, so keep an untouched copy
	// for the second encode.
	block2 := block

	var buf bytes.Buffer
	bw := newBitWriter(NewWriterSink(&buf))
	dc := encodeBlock(bw, &block, &t1.scaledLuma, &t1.huffLumaDC, &t1.huffLumaAC, 0)
	bw.flush()
	require.NoError(t, bw.err)
	assert.NotZero(t, dc)

	// Re-encoding the identical block with prevDC == dc must yield a
	// zero DC difference.
	var buf2 bytes.Buffer
	bw2 := newBitWriter(NewWriterSink(&buf2))
	dc2 := encodeBlock(bw2, &block2, &t1.scaledLuma, &t1.huffLumaDC, &t1.huffLumaAC, dc)
	bw2.flush()
	require.NoError(t, bw2.err)
	assert.Equal(t, dc, dc2)

	var wantBuf bytes.Buffer
	want := newBitWriter(NewWriterSink(&wantBuf))
	want.putBitCode(t1.huffLumaDC[0x00])
	want.putBitCode(t1.huffLumaAC[0x00])
	want.flush()
	assert.Equal(t, wantBuf.Bytes(), buf2.Bytes())
}
