package gltftex

// TextureMapType classifies how a texture is used by the host material. The
// map type selects the channel conversion and the alpha heuristic.
type TextureMapType uint16

const (
	TEXTURE_MAP_MAIN TextureMapType = iota
	TEXTURE_MAP_METALLIC_GLOSS
	TEXTURE_MAP_METALLIC_GLOSS_DONT_CONVERT
	TEXTURE_MAP_BUMP
	TEXTURE_MAP_OCCLUSION
	TEXTURE_MAP_LIGHT
	TEXTURE_MAP_CUBE
	TEXTURE_MAP_SPEC_GLOSS
	TEXTURE_MAP_EMISSION
	TEXTURE_MAP_UNKNOWN
)

// ColorSpace selects the transfer function applied when pixels are read
// back from a host texture. It is always passed explicitly, never held in
// shared state.
type ColorSpace uint16

const (
	COLOR_SPACE_RAW ColorSpace = iota
	COLOR_SPACE_SRGB
)

// AlphaSource mirrors the authoring-time alpha declaration an asset
// importer may carry for a texture.
type AlphaSource uint16

const (
	ALPHA_SOURCE_NONE AlphaSource = iota
	ALPHA_SOURCE_FROM_INPUT
	ALPHA_SOURCE_FROM_GRAYSCALE
)

const (
	TEXTURE_WRAP_CLAMP  = 0
	TEXTURE_WRAP_REPEAT = 1
	TEXTURE_WRAP_MIRROR = 2
)

const (
	TEXTURE_FILTER_POINT     = 0
	TEXTURE_FILTER_BILINEAR  = 1
	TEXTURE_FILTER_TRILINEAR = 2
)

const (
	TEXTURE_FORMAT_R     = 0
	TEXTURE_FORMAT_RG    = 2
	TEXTURE_FORMAT_RGB   = 4
	TEXTURE_FORMAT_RGBA  = 6
	TEXTURE_FORMAT_RGBM  = 8
	TEXTURE_FORMAT_ALPHA = 11
)

const (
	TEXTURE_COMPRESSED_ZLIB = 1
)

const (
	EXT_PNG  = ".png"
	EXT_JPG  = ".jpg"
	EXT_JPEG = ".jpeg"

	MIME_PNG = "image/png"
	MIME_JPG = "image/jpeg"
)
