// Package preprocess turns decoded images into the float32 input tensor the
// classifier expects.
package preprocess

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/nfnt/resize"
)

// DefaultSize is the square input resolution of the ResNet50-based model.
const DefaultSize = 224

// Layout is the memory order of the input tensor.
type Layout string

const (
	// NHWC is the Keras/TensorFlow channels-last order.
	NHWC Layout = "nhwc"
	// NCHW is the channels-first order used by PyTorch exports.
	NCHW Layout = "nchw"
)

// Mode selects the pixel normalisation the model was trained with.
type Mode string

const (
	// ModeCaffe converts RGB to BGR and subtracts the ImageNet channel means
	// without scaling. This is Keras' resnet50.preprocess_input.
	ModeCaffe Mode = "caffe"
	// ModeTF scales pixels to [-1, 1].
	ModeTF Mode = "tf"
	// ModeTorch scales to [0, 1] and standardises with ImageNet mean/std.
	ModeTorch Mode = "torch"
	// ModeUnit scales to [0, 1].
	ModeUnit Mode = "unit"
)

var (
	caffeMeanBGR = [3]float32{103.939, 116.779, 123.68}
	torchMean    = [3]float32{0.485, 0.456, 0.406}
	torchStd     = [3]float32{0.229, 0.224, 0.225}
)

// Options configures Tensor. Zero values select the defaults.
type Options struct {
	Size   int
	Layout Layout
	Mode   Mode
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Layout == "" {
		o.Layout = NHWC
	}
	if o.Mode == "" {
		o.Mode = ModeCaffe
	}
	return o
}

// Shape returns the batch-of-one tensor shape for the options.
func (o Options) Shape() []int64 {
	o = o.withDefaults()
	s := int64(o.Size)
	if o.Layout == NCHW {
		return []int64{1, 3, s, s}
	}
	return []int64{1, s, s, 3}
}

// ParseLayout accepts "nhwc" or "nchw" in any case; empty selects NHWC.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return NHWC, nil
	case NHWC, NCHW:
		return l, nil
	default:
		return "", fmt.Errorf("unknown tensor layout %q", s)
	}
}

// ParseMode accepts caffe, tf, torch or unit; empty selects caffe.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeCaffe, nil
	case ModeCaffe, ModeTF, ModeTorch, ModeUnit:
		return m, nil
	default:
		return "", fmt.Errorf("unknown preprocess mode %q", s)
	}
}

// Resize scales img to size x size with bicubic interpolation. Aspect ratio
// is not preserved.
func Resize(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	return resize.Resize(uint(size), uint(size), img, resize.Bicubic)
}

// Tensor resizes img and writes its RGB channels into a new float32 slice in
// the configured layout and normalisation. Alpha is dropped.
func Tensor(img image.Image, opts Options) ([]float32, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty image %dx%d", b.Dx(), b.Dy())
	}
	opts = opts.withDefaults()
	if _, err := ParseLayout(string(opts.Layout)); err != nil {
		return nil, err
	}
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}

	src := Resize(img, opts.Size)
	b := src.Bounds()
	n := opts.Size
	plane := n * n
	out := make([]float32, 3*plane)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			px := normalize(opts.Mode, float32(c.R), float32(c.G), float32(c.B))
			i := y*n + x
			for ch := 0; ch < 3; ch++ {
				if opts.Layout == NCHW {
					out[ch*plane+i] = px[ch]
				} else {
					out[i*3+ch] = px[ch]
				}
			}
		}
	}
	return out, nil
}

// normalize maps 0..255 RGB to the three model channels in output order.
func normalize(m Mode, r, g, b float32) [3]float32 {
	switch m {
	case ModeTF:
		return [3]float32{r/127.5 - 1, g/127.5 - 1, b/127.5 - 1}
	case ModeTorch:
		return [3]float32{
			(r/255 - torchMean[0]) / torchStd[0],
			(g/255 - torchMean[1]) / torchStd[1],
			(b/255 - torchMean[2]) / torchStd[2],
		}
	case ModeUnit:
		return [3]float32{r / 255, g / 255, b / 255}
	default:
		return [3]float32{b - caffeMeanBGR[0], g - caffeMeanBGR[1], r - caffeMeanBGR[2]}
	}
}
