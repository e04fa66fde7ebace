package preprocess

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"
)

// grayPNG streams an all-black 8-bit grayscale PNG of w x h without holding
// the pixels in memory. Large sizes compress to a few hundred KiB.
func grayPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var out bytes.Buffer
	out.Write([]byte("\x89PNG\r\n\x1a\n"))
	chunk := func(typ string, data []byte) {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(data)))
		out.Write(n[:])
		crc := crc32.NewIEEE()
		crc.Write([]byte(typ))
		crc.Write(data)
		out.WriteString(typ)
		out.Write(data)
		binary.BigEndian.PutUint32(n[:], crc.Sum32())
		out.Write(n[:])
	}
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(h))
	ihdr[8] = 8 // bit depth; color type 0 (gray)
	chunk("IHDR", ihdr)

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	row := make([]byte, 1+w) // filter byte + pixels
	for y := 0; y < h; y++ {
		_, err := zw.Write(row)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	chunk("IDAT", idat.Bytes())
	chunk("IEND", nil)
	return out.Bytes()
}

func TestDecodeLimited_RejectsHugeDimensions(t *testing.T) {
	data := grayPNG(t, 20000, 20000)
	require.Less(t, len(data), 1<<20)

	_, _, err := DecodeLimited(bytes.NewReader(data), 0)
	require.Error(t, err)
	require.True(t, IsTooManyPixels(err))
	var pe *PixelLimitError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 20000, pe.Width)
	require.Equal(t, DefaultMaxPixels, pe.Max)
}

func TestDecodeLimited_WithinBudget(t *testing.T) {
	img, format, err := DecodeLimited(bytes.NewReader(grayPNG(t, 30, 20)), 600)
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 30, img.Bounds().Dx())

	_, _, err = DecodeLimited(bytes.NewReader(grayPNG(t, 30, 21)), 600)
	require.True(t, IsTooManyPixels(err))
}

func TestDecodeLimited_Unsupported(t *testing.T) {
	_, _, err := DecodeLimited(bytes.NewReader([]byte("plain text")), 0)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
