package bjpeg

// Downsample selects how chroma channels are subsampled relative to luma.
type Downsample int

const (
	// Downsample444 keeps one Cb/Cr sample per pixel (no subsampling).
	Downsample444 Downsample = iota
	// Downsample420 averages Cb/Cr over 2x2 pixel blocks.
	Downsample420
)

// Options configures Encode. A nil *Options is equivalent to &Options{}:
// quality 90, 4:4:4 chroma, no comment.
type Options struct {
	// Quality is in [1,100]; higher preserves more detail at the cost of
	// output size. Zero means 90.
	Quality int
	// Downsample chooses the chroma subsampling scheme. Ignored for
	// grayscale input. The zero value, Downsample444, means no
	// subsampling.
	Downsample Downsample
	// Comment, if non-empty, is written as a COM segment. It must not
	// contain a 0xFF byte.
	Comment string
}

const defaultQuality = 90

// effective returns o, or the zero Options if o is nil, so every accessor
// below can treat a nil *Options and a &Options{} identically.
func (o *Options) effective() Options {
	if o == nil {
		return Options{}
	}
	return *o
}

func (o *Options) quality() int {
	if q := o.effective().Quality; q != 0 {
		return q
	}
	return defaultQuality
}

func (o *Options) downsample() Downsample {
	return o.effective().Downsample
}

func (o *Options) comment() string {
	return o.effective().Comment
}

// tables holds every quality-dependent table Encode needs: the fused
// scale/dequant tables for the block encoder's hot loop, the compiled
// Huffman tables (static across quality, but held here so callers only
// need to thread one struct through), and the zig-zag-order quantization
// tables as written to the DQT segment. A *tables is built fresh by every
// Encode call and never shared across calls.
type tables struct {
	lumaQuant, chromaQuant     [blockSize]byte
	scaledLuma, scaledChroma   [blockSize]float32
	huffLumaDC, huffLumaAC     huffmanTable
	huffChromaDC, huffChromaAC huffmanTable
}

func buildTables(quality int) *tables {
	t := &tables{
		lumaQuant:   quantTable(defaultQuant[quantLuma], quality),
		chromaQuant: quantTable(defaultQuant[quantChroma], quality),
	}
	t.scaledLuma = scaledDequant(t.lumaQuant)
	t.scaledChroma = scaledDequant(t.chromaQuant)
	t.huffLumaDC = staticHuffman.lumaDC
	t.huffLumaAC = staticHuffman.lumaAC
	t.huffChromaDC = staticHuffman.chromaDC
	t.huffChromaAC = staticHuffman.chromaAC
	return t
}
