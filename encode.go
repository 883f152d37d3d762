package logofix

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"io"
)

// CompressionLevel selects how hard the encoder works on the IDAT stream.
type CompressionLevel int

const (
	BestCompression CompressionLevel = iota
	DefaultCompression
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// IHDR color type for 8-bit truecolor with alpha.
const ctTrueColorAlpha = 6

// Row filter types, see https://www.w3.org/TR/png/#9Filters
const (
	ftNone = iota
	ftSub
	ftUp
	ftAverage
	ftPaeth
	nFilter
)

const bytesPerPixel = 4

/*
EncodeRGBA writes img to w as a PNG with color type 6 (truecolor plus alpha,
8 bits per channel).

The standard library encoder picks the smallest color type that can hold the
pixels, so a fully opaque image comes out as plain RGB. Logos are expected to
carry an alpha channel no matter what they contain, so this encoder always
writes all four channels.

Each scanline is filtered with whichever of the five PNG filters yields the
smallest sum of absolute differences, then the whole stream is deflated at the
requested level.
*/
func EncodeRGBA(w io.Writer, img *image.NRGBA, level CompressionLevel) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 || int64(width) > 1<<31-1 || int64(height) > 1<<31-1 {
		return fmt.Errorf("png: invalid image size %dx%d", width, height)
	}

	if _, err := io.WriteString(w, pngHeader); err != nil {
		return err
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = ctTrueColorAlpha
	// Compression, filter and interlace methods stay 0.
	if err := writeChunk(w, "IHDR", ihdr[:]); err != nil {
		return err
	}

	idat, err := deflateRows(img, level)
	if err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", idat); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

func writeChunk(w io.Writer, name string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(data)))
	copy(header[4:], name)

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)
	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	for _, p := range [][]byte{header[:], data, footer[:]} {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

func deflateRows(img *image.NRGBA, level CompressionLevel) ([]byte, error) {
	zlevel := zlib.BestCompression
	if level == DefaultCompression {
		zlevel = zlib.DefaultCompression
	}

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlevel)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	n := bytesPerPixel * bounds.Dx()

	// The row above the first scanline is all zeros.
	prev := make([]byte, n)
	var scratch [nFilter][]byte
	for f := range scratch {
		scratch[f] = make([]byte, n+1)
		scratch[f][0] = byte(f)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := img.PixOffset(bounds.Min.X, y)
		row := img.Pix[i : i+n]
		if _, err := zw.Write(filterRow(&scratch, row, prev)); err != nil {
			return nil, err
		}
		prev = row
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// filterRow fills every scratch row and returns the cheapest one, including
// its leading filter-type byte.
func filterRow(scratch *[nFilter][]byte, row, prev []byte) []byte {
	best, bestSum := ftNone, -1
	for f := ftNone; f < nFilter; f++ {
		out := scratch[f][1:]
		sum := 0
		for i, x := range row {
			var a, b, c byte
			b = prev[i]
			if i >= bytesPerPixel {
				a = row[i-bytesPerPixel]
				c = prev[i-bytesPerPixel]
			}
			var d byte
			switch f {
			case ftNone:
				d = x
			case ftSub:
				d = x - a
			case ftUp:
				d = x - b
			case ftAverage:
				d = x - byte((int(a)+int(b))/2)
			case ftPaeth:
				d = x - paeth(a, b, c)
			}
			out[i] = d
			sum += abs8(d)
		}
		if bestSum < 0 || sum < bestSum {
			best, bestSum = f, sum
		}
	}
	return scratch[best]
}

// paeth implements the Paeth predictor, choosing among left (a), above (b)
// and upper-left (c).
func paeth(a, b, c byte) byte {
	pa := absInt(int(b) - int(c))
	pb := absInt(int(a) - int(c))
	pc := absInt(int(a) + int(b) - 2*int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

// abs8 treats d as a signed byte.
func abs8(d byte) int {
	if d < 128 {
		return int(d)
	}
	return 256 - int(d)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
