package preprocess

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTensor_CaffeNHWC(t *testing.T) {
	img := solid(DefaultSize, DefaultSize, color.NRGBA{R: 255, G: 10, B: 0, A: 255})
	out, err := Tensor(img, Options{})
	require.NoError(t, err)
	require.Len(t, out, 3*DefaultSize*DefaultSize)
	// channels are B, G, R minus ImageNet means
	require.InDelta(t, 0-103.939, out[0], 1e-4)
	require.InDelta(t, 10-116.779, out[1], 1e-4)
	require.InDelta(t, 255-123.68, out[2], 1e-4)
	last := len(out) - 3
	require.Equal(t, out[0:3], out[last:])
}

func TestTensor_NCHWPlanes(t *testing.T) {
	size := 8
	img := solid(size, size, color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	out, err := Tensor(img, Options{Size: size, Layout: NCHW, Mode: ModeUnit})
	require.NoError(t, err)
	plane := size * size
	require.InDelta(t, 1.0, out[0], 1e-6)
	require.InDelta(t, 0.0, out[plane], 1e-6)
	require.InDelta(t, 0.2, out[2*plane], 1e-6)
	require.InDelta(t, 1.0, out[plane-1], 1e-6)
}

func TestTensor_Modes(t *testing.T) {
	img := solid(4, 4, color.NRGBA{R: 255, G: 255, B: 0, A: 255})
	tf, err := Tensor(img, Options{Size: 4, Mode: ModeTF})
	require.NoError(t, err)
	require.InDelta(t, 1.0, tf[0], 1e-6)
	require.InDelta(t, -1.0, tf[2], 1e-6)

	torch, err := Tensor(img, Options{Size: 4, Mode: ModeTorch})
	require.NoError(t, err)
	require.InDelta(t, (1-0.485)/0.229, torch[0], 1e-4)
	require.InDelta(t, (0-0.406)/0.225, torch[2], 1e-4)
}

func TestTensor_ResizesAnySize(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {640, 480}, {31, 700}} {
		img := solid(sz[0], sz[1], color.NRGBA{R: 100, G: 100, B: 100, A: 255})
		out, err := Tensor(img, Options{Size: 16, Mode: ModeUnit})
		require.NoError(t, err)
		require.Len(t, out, 3*16*16)
		for _, v := range out {
			require.InDelta(t, 100.0/255, v, 0.01)
		}
	}
}

func TestTensor_GrayAndPalettedExpandToRGB(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range g.Pix {
		g.Pix[i] = 200
	}
	out, err := Tensor(g, Options{Size: 4, Mode: ModeUnit})
	require.NoError(t, err)
	require.InDelta(t, out[0], out[1], 1e-6)
	require.InDelta(t, out[1], out[2], 1e-6)

	p := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.NRGBA{R: 0, G: 0, B: 255, A: 255}})
	out, err = Tensor(p, Options{Size: 4, Mode: ModeUnit})
	require.NoError(t, err)
	require.InDelta(t, 0.0, out[0], 1e-6)
	require.InDelta(t, 1.0, out[2], 1e-6)
}

func TestTensor_DropsAlpha(t *testing.T) {
	img := solid(4, 4, color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	out, err := Tensor(img, Options{Size: 4, Mode: ModeUnit})
	require.NoError(t, err)
	require.InDelta(t, 1.0, out[0], 1e-6)
}

func TestTensor_Deterministic(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 37, 53))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	a, err := Tensor(img, Options{})
	require.NoError(t, err)
	b, err := Tensor(img, Options{})
	require.NoError(t, err)
	require.Equal(t, a, b)
	for _, v := range a {
		require.False(t, math.IsNaN(float64(v)))
	}
}

func TestTensor_Errors(t *testing.T) {
	_, err := Tensor(nil, Options{})
	require.Error(t, err)
	_, err = Tensor(image.NewNRGBA(image.Rect(0, 0, 0, 5)), Options{})
	require.Error(t, err)
	_, err = Tensor(solid(2, 2, color.White), Options{Mode: "bogus"})
	require.Error(t, err)
	_, err = Tensor(solid(2, 2, color.White), Options{Layout: "hwcn"})
	require.Error(t, err)
}

func TestShape(t *testing.T) {
	require.Equal(t, []int64{1, 224, 224, 3}, Options{}.Shape())
	require.Equal(t, []int64{1, 3, 32, 32}, Options{Size: 32, Layout: NCHW}.Shape())
}

func TestParse(t *testing.T) {
	l, err := ParseLayout(" NCHW ")
	require.NoError(t, err)
	require.Equal(t, NCHW, l)
	l, err = ParseLayout("")
	require.NoError(t, err)
	require.Equal(t, NHWC, l)

	m, err := ParseMode("TF")
	require.NoError(t, err)
	require.Equal(t, ModeTF, m)
	m, err = ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeCaffe, m)
	_, err = ParseMode("resnet")
	require.Error(t, err)
}

func TestDecodeAndSniff(t *testing.T) {
	data := encodePNG(t, solid(3, 2, color.White))
	require.Equal(t, "image/png", Sniff(data))
	require.True(t, IsImageMIME(Sniff(data)))

	img, format, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 3, img.Bounds().Dx())

	_, _, err = Decode(bytes.NewReader([]byte("definitely not an image")))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	require.False(t, IsImageMIME(Sniff([]byte("hello world"))))
}
