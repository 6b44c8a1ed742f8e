package gltftex

import (
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"
)

// ExportSampler maps the texture's wrap and filter settings to a glTF
// sampler and returns its id, deduplicated on texture identity alone:
// sampler state does not vary by map type.
func (e *Exporter) ExportSampler(tex *Texture) (uint32, error) {
	if tex == nil {
		return 0, ErrNilTexture
	}
	if id, ok := e.samplerIds[tex.Id]; ok {
		return id, nil
	}

	wrap := e.mapWrap(tex)
	sp := &gltf.Sampler{WrapS: wrap, WrapT: wrap}
	sp.MinFilter, sp.MagFilter = e.mapFilter(tex)

	id := uint32(len(e.Doc.Samplers))
	e.Doc.Samplers = append(e.Doc.Samplers, sp)
	e.samplerIds[tex.Id] = id
	return id, nil
}

func (e *Exporter) mapWrap(tex *Texture) gltf.WrappingMode {
	switch tex.Wrap {
	case TEXTURE_WRAP_CLAMP:
		return gltf.WrapClampToEdge
	case TEXTURE_WRAP_REPEAT:
		return gltf.WrapRepeat
	case TEXTURE_WRAP_MIRROR:
		return gltf.WrapMirroredRepeat
	}
	e.Logger.Warn("unsupported wrap mode, falling back to repeat",
		zap.String("texture", tex.Name),
		zap.Uint16("wrap", tex.Wrap))
	return gltf.WrapRepeat
}

func (e *Exporter) mapFilter(tex *Texture) (gltf.MinFilter, gltf.MagFilter) {
	if tex.MipCount > 1 {
		switch tex.Filter {
		case TEXTURE_FILTER_POINT:
			return gltf.MinNearestMipMapNearest, gltf.MagNearest
		case TEXTURE_FILTER_BILINEAR:
			return gltf.MinLinearMipMapNearest, gltf.MagLinear
		case TEXTURE_FILTER_TRILINEAR:
			return gltf.MinLinearMipMapLinear, gltf.MagLinear
		}
		e.Logger.Warn("unsupported filter mode, falling back to trilinear",
			zap.String("texture", tex.Name),
			zap.Uint16("filter", tex.Filter))
		return gltf.MinLinearMipMapLinear, gltf.MagLinear
	}
	if tex.Filter == TEXTURE_FILTER_POINT {
		return gltf.MinNearest, gltf.MagNearest
	}
	return gltf.MinLinear, gltf.MagLinear
}
