package gltftex

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// resolvePassthrough decides whether the texture's original on-disk file
// can be copied verbatim instead of re-encoded. It returns the source file
// to copy from and the output base name (without extension). Passthrough
// bypasses both the channel converter and the format decision, so any map
// type whose pixels must be rewritten is disqualified here.
func (e *Exporter) resolvePassthrough(tex *Texture, mapType TextureMapType, name string) (string, string, bool) {
	if !e.Opts.TryExportTexturesFromDisk {
		return "", "", false
	}
	src, ok := e.Inspector.SourcePath(tex)
	if !ok || src == "" {
		return "", "", false
	}

	ext := strings.ToLower(filepath.Ext(src))
	if ext != EXT_PNG && ext != EXT_JPG && ext != EXT_JPEG {
		e.Logger.Warn("source file is not png or jpeg, re-encoding",
			zap.String("texture", name),
			zap.String("source", src))
		return "", "", false
	}

	// Normal maps generated from grayscale inputs and packed material maps
	// whose source carries alpha hold pixels the on-disk file does not;
	// conversion is mandatory for them.
	if mapType == TEXTURE_MAP_BUMP && e.Inspector.NormalFromGrayscale(tex) {
		return "", "", false
	}
	if (mapType == TEXTURE_MAP_METALLIC_GLOSS || mapType == TEXTURE_MAP_SPEC_GLOSS) && FormatHasAlpha(tex.Format) {
		return "", "", false
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if !e.Inspector.MainAssetIs2D(src) {
		// Several logical textures can share one source asset; suffix the
		// texture name so their outputs do not collide.
		base = base + "_" + name
	}
	return src, base, true
}
