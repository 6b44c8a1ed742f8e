package gltftex

import (
	"image"
	"math"

	"github.com/flywave/go3d/vec3"
	"github.com/pkg/errors"
)

// ConvertImage applies the channel remapping required for a map type and
// returns a new RGBA8 buffer of the same dimensions. Map types without a
// remap get a plain copy. Cubemaps do not go through here, they use
// CubemapToEquirect.
func ConvertImage(src *image.NRGBA, mapType TextureMapType) *image.NRGBA {
	switch mapType {
	case TEXTURE_MAP_METALLIC_GLOSS:
		return convertMetallicGloss(src)
	case TEXTURE_MAP_BUMP:
		return convertBump(src)
	default:
		dst := image.NewNRGBA(src.Bounds())
		copy(dst.Pix, src.Pix)
		return dst
	}
}

// convertMetallicGloss repacks a metallic-gloss texture (metallic in R,
// glossiness in A) into the metallic-roughness layout glTF expects
// (roughness in G, metallic in B). Glossiness inverts into roughness.
func convertMetallicGloss(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		dst.Pix[i] = 0
		dst.Pix[i+1] = 255 - src.Pix[i+3]
		dst.Pix[i+2] = src.Pix[i]
		dst.Pix[i+3] = 255
	}
	return dst
}

// convertBump recovers a standard RGB normal map from the host's packed
// representation, where X lives in the alpha channel and Y in green. The
// source must have been read with COLOR_SPACE_RAW.
func convertBump(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		dst.Pix[i] = src.Pix[i+3]
		dst.Pix[i+1] = src.Pix[i+1]
		dst.Pix[i+2] = src.Pix[i+2]
		dst.Pix[i+3] = 255
	}
	return dst
}

// CubemapToEquirect reprojects six square cubemap faces, ordered
// +X,-X,+Y,-Y,+Z,-Z, into one 2:1 equirectangular image. The output width
// is twice the face width.
func CubemapToEquirect(faces [6]*image.NRGBA) (*image.NRGBA, error) {
	if faces[0] == nil {
		return nil, errors.New("nil cubemap face")
	}
	fs := faces[0].Bounds().Dx()
	for i := range faces {
		if faces[i] == nil {
			return nil, errors.New("nil cubemap face")
		}
		b := faces[i].Bounds()
		if b.Dx() != fs || b.Dy() != fs {
			return nil, errors.Errorf("cubemap face %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), fs, fs)
		}
	}

	w := fs * 2
	h := fs
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		lat := math.Pi/2 - (float64(y)+0.5)/float64(h)*math.Pi
		for x := 0; x < w; x++ {
			lon := (float64(x)+0.5)/float64(w)*2*math.Pi - math.Pi
			dir := vec3.T{
				float32(math.Cos(lat) * math.Sin(lon)),
				float32(math.Sin(lat)),
				float32(math.Cos(lat) * math.Cos(lon)),
			}
			dir.Normalize()
			face, u, v := cubeLookup(&dir)
			px := int(u * float64(fs))
			py := int(v * float64(fs))
			if px > fs-1 {
				px = fs - 1
			}
			if py > fs-1 {
				py = fs - 1
			}
			dst.SetNRGBA(x, y, faces[face].NRGBAAt(px, py))
		}
	}
	return dst, nil
}

// cubeLookup maps a direction to a face index and face-local uv in [0,1).
func cubeLookup(dir *vec3.T) (int, float64, float64) {
	x := float64(dir[0])
	y := float64(dir[1])
	z := float64(dir[2])
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)

	var face int
	var u, v float64
	switch {
	case ax >= ay && ax >= az:
		if x > 0 {
			face, u, v = 0, -z/ax, -y/ax
		} else {
			face, u, v = 1, z/ax, -y/ax
		}
	case ay >= az:
		if y > 0 {
			face, u, v = 2, x/ay, z/ay
		} else {
			face, u, v = 3, x/ay, -z/ay
		}
	default:
		if z > 0 {
			face, u, v = 4, x/az, -y/az
		} else {
			face, u, v = 5, -x/az, -y/az
		}
	}
	return face, (u + 1) / 2, (v + 1) / 2
}
