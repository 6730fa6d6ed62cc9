package bjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityToScaleBounds(t *testing.T) {
	assert.Equal(t, 5000, qualityToScale(1))
	assert.Equal(t, 100, qualityToScale(50))
	assert.Equal(t, 98, qualityToScale(51))
	assert.Equal(t, 0, qualityToScale(100))
}

func TestQuantTableClampsAtQuality100(t *testing.T) {
	for _, defaults := range defaultQuant {
		q := quantTable(defaults, 100)
		for i, v := range q {
			assert.GreaterOrEqual(t, v, byte(1))
			assert.LessOrEqual(t, v, defaults[i])
		}
	}
}

func TestQuantTableClampsAtQuality1(t *testing.T) {
	for _, defaults := range defaultQuant {
		q := quantTable(defaults, 1)
		for _, v := range q {
			assert.LessOrEqual(t, v, byte(255))
			assert.GreaterOrEqual(t, v, byte(1))
		}
	}
}

func TestQuantTableMonotonicWithQuality(t *testing.T) {
	// Higher quality must never produce a larger quantization step than a
	// lower quality, for any fixed coefficient.
	low := quantTable(defaultQuant[quantLuma], 30)
	high := quantTable(defaultQuant[quantLuma], 90)
	for i := range low {
		assert.LessOrEqual(t, high[i], low[i])
	}
}

func TestScaledDequantIsNaturalOrder(t *testing.T) {
	q := quantTable(defaultQuant[quantLuma], 90)
	s := scaledDequant(q)
	for i := 0; i < blockSize; i++ {
		assert.Greater(t, s[i], float32(0))
		// Zig-zag position i is stored at its natural index.
		nat := zigzag[i]
		assert.Equal(t, 1/(aanScale[nat/8]*aanScale[nat%8]*8*float32(q[i])), s[nat])
	}
}
