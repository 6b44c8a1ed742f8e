package gltftex

import (
	"bytes"
	"compress/zlib"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// rgbmRange is the HDR range multiplier encoded in the M channel of RGBM
// textures.
const rgbmRange = 8.0

// Texture is the host engine's native texture representation. The exporter
// shares the texture with the host and never owns its lifetime. For
// cubemaps Faces is 6 and Data holds the six face payloads back to back,
// each Size[0]*Size[1] pixels in +X,-X,+Y,-Y,+Z,-Z order.
type Texture struct {
	Id         int32     `json:"id"`
	Name       string    `json:"name"`
	Size       [2]uint64 `json:"size"`
	Format     uint16    `json:"format"`
	Compressed uint16    `json:"compressed"`
	Data       []byte    `json:"-"`
	Wrap       uint16    `json:"wrap"`
	Filter     uint16    `json:"filter"`
	MipCount   uint16    `json:"mipCount"`
	Faces      uint16    `json:"faces"`
}

func CompressImage(buf []byte) []byte {
	var bt []byte
	bf := bytes.NewBuffer(bt)
	w := zlib.NewWriter(bf)
	w.Write(buf)
	w.Close()
	return bf.Bytes()
}

func DecompressImage(src []byte) ([]byte, error) {
	bf := bytes.NewBuffer(src)
	r, er := zlib.NewReader(bf)
	if er != nil {
		return nil, er
	}
	return io.ReadAll(r)
}

func pixelSize(format uint16) (int, error) {
	switch format {
	case TEXTURE_FORMAT_R, TEXTURE_FORMAT_ALPHA:
		return 1, nil
	case TEXTURE_FORMAT_RG:
		return 2, nil
	case TEXTURE_FORMAT_RGB:
		return 3, nil
	case TEXTURE_FORMAT_RGBA, TEXTURE_FORMAT_RGBM:
		return 4, nil
	}
	return 0, errors.Errorf("unsupported texture format %d", format)
}

// FormatHasAlpha reports whether the native pixel format carries an alpha
// channel. Unknown formats report true so that the exporter falls back to
// PNG rather than dropping a channel.
func FormatHasAlpha(format uint16) bool {
	switch format {
	case TEXTURE_FORMAT_R, TEXTURE_FORMAT_RG, TEXTURE_FORMAT_RGB:
		return false
	case TEXTURE_FORMAT_RGBA, TEXTURE_FORMAT_ALPHA:
		return true
	}
	return true
}

func linearToSrgb(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// payload returns the raw pixel bytes, decompressing if the texture stores
// a zlib-packed payload.
func (tex *Texture) payload() ([]byte, error) {
	if tex.Compressed == TEXTURE_COMPRESSED_ZLIB {
		data, e := DecompressImage(tex.Data)
		if e != nil && e != io.EOF {
			return nil, errors.Wrap(e, "decompress texture payload")
		}
		return data, nil
	}
	return tex.Data, nil
}

func decodePixels(data []byte, w, h int, format uint16, cs ColorSpace) (*image.NRGBA, error) {
	sz, err := pixelSize(format)
	if err != nil {
		return nil, err
	}
	if len(data) < w*h*sz {
		return nil, errors.Errorf("texture payload too short: have %d bytes, need %d", len(data), w*h*sz)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			p := i*w*sz + j*sz
			var c color.NRGBA
			switch format {
			case TEXTURE_FORMAT_R:
				c = color.NRGBA{R: data[p], G: data[p], B: data[p], A: 255}
			case TEXTURE_FORMAT_ALPHA:
				c = color.NRGBA{A: data[p]}
			case TEXTURE_FORMAT_RG:
				c = color.NRGBA{R: data[p], G: data[p+1], A: 255}
			case TEXTURE_FORMAT_RGB:
				c = color.NRGBA{R: data[p], G: data[p+1], B: data[p+2], A: 255}
			case TEXTURE_FORMAT_RGBA:
				c = color.NRGBA{R: data[p], G: data[p+1], B: data[p+2], A: data[p+3]}
			case TEXTURE_FORMAT_RGBM:
				// RGBM stores linear HDR scaled by the M channel; gamma
				// encoding happens only for an sRGB read.
				m := float64(data[p+3]) / 255 * rgbmRange
				var out [3]uint8
				for k := 0; k < 3; k++ {
					v := float64(data[p+k]) / 255 * m
					if cs == COLOR_SPACE_SRGB {
						v = linearToSrgb(v)
					}
					out[k] = clamp255(v * 255)
				}
				c = color.NRGBA{R: out[0], G: out[1], B: out[2], A: 255}
			}
			img.SetNRGBA(j, i, c)
		}
	}
	return img, nil
}

// ReadPixels decodes the texture payload into an RGBA8 image. The color
// space is an explicit parameter of every read; callers that need a raw
// (non gamma-corrected) view, such as the normal-map conversion, pass
// COLOR_SPACE_RAW.
func (tex *Texture) ReadPixels(cs ColorSpace) (*image.NRGBA, error) {
	if tex.Faces > 1 {
		return nil, errors.New("ReadPixels on a cubemap texture, use ReadFaces")
	}
	data, err := tex.payload()
	if err != nil {
		return nil, err
	}
	return decodePixels(data, int(tex.Size[0]), int(tex.Size[1]), tex.Format, cs)
}

// ReadFaces decodes the six cubemap faces of the texture.
func (tex *Texture) ReadFaces(cs ColorSpace) ([6]*image.NRGBA, error) {
	var faces [6]*image.NRGBA
	if tex.Faces != 6 {
		return faces, errors.Errorf("texture has %d faces, cubemap needs 6", tex.Faces)
	}
	data, err := tex.payload()
	if err != nil {
		return faces, err
	}
	sz, err := pixelSize(tex.Format)
	if err != nil {
		return faces, err
	}
	w := int(tex.Size[0])
	h := int(tex.Size[1])
	faceLen := w * h * sz
	if len(data) < 6*faceLen {
		return faces, errors.Errorf("cubemap payload too short: have %d bytes, need %d", len(data), 6*faceLen)
	}
	for f := 0; f < 6; f++ {
		img, err := decodePixels(data[f*faceLen:(f+1)*faceLen], w, h, tex.Format, cs)
		if err != nil {
			return faces, err
		}
		faces[f] = img
	}
	return faces, nil
}

// CreateTexture loads an image file into a Texture. The payload is stored
// zlib-compressed.
func CreateTexture(name string) (*Texture, error) {
	reader, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	_, format, err := image.DecodeConfig(reader)
	if err != nil {
		return nil, err
	}
	reader.Seek(0, io.SeekStart)
	var img image.Image
	switch format {
	case "jpeg", "jpg":
		img, err = jpeg.Decode(reader)
	case "png":
		img, err = png.Decode(reader)
	case "gif":
		img, err = gif.Decode(reader)
	case "bmp":
		img, err = bmp.Decode(reader)
	case "tif", "tiff":
		img, err = tiff.Decode(reader)
	default:
		return nil, errors.Errorf("unknown image format %q", format)
	}
	if err != nil {
		return nil, err
	}
	_, fn := filepath.Split(name)
	return CreateTextureFromImage(img, fn)
}

// CreateTextureFromImage converts a decoded image into a Texture with
// default sampler state (repeat wrap, bilinear filter, no mips).
func CreateTextureFromImage(img image.Image, name string) (*Texture, error) {
	bd := img.Bounds()
	buf := make([]byte, 0, bd.Dx()*bd.Dy()*4)
	for y := 0; y < bd.Dy(); y++ {
		for x := 0; x < bd.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(bd.Min.X+x, bd.Min.Y+y)).(color.NRGBA)
			buf = append(buf, c.R, c.G, c.B, c.A)
		}
	}
	t := &Texture{
		Name:       name,
		Format:     TEXTURE_FORMAT_RGBA,
		Size:       [2]uint64{uint64(bd.Dx()), uint64(bd.Dy())},
		Compressed: TEXTURE_COMPRESSED_ZLIB,
		Data:       CompressImage(buf),
		Wrap:       TEXTURE_WRAP_REPEAT,
		Filter:     TEXTURE_FILTER_BILINEAR,
		MipCount:   1,
	}
	return t, nil
}
