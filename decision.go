package gltftex

// FormatDecision is the output container choice for one texture export:
// which encoder to use, which extension the file gets and which color
// space the pixel read must happen in.
type FormatDecision struct {
	HasAlpha   bool
	CanUseJpeg bool
	ColorSpace ColorSpace
	Ext        string
}

func (d FormatDecision) MimeType() string {
	if d.Ext == EXT_JPG || d.Ext == EXT_JPEG {
		return MIME_JPG
	}
	return MIME_PNG
}

// DecideFormat picks the output container for a texture and map type. Map
// type overrides run first: a cubemap always carries alpha, the packed
// material maps never do. Everything else falls through to the source
// introspection heuristic. JPEG is only eligible when the texture has no
// alpha and the file type heuristic is enabled.
func DecideFormat(tex *Texture, mapType TextureMapType, opts *ExportOptions, insp SourceAssetInspector) FormatDecision {
	d := FormatDecision{ColorSpace: COLOR_SPACE_SRGB}

	switch mapType {
	case TEXTURE_MAP_CUBE:
		d.HasAlpha = true
	case TEXTURE_MAP_METALLIC_GLOSS,
		TEXTURE_MAP_METALLIC_GLOSS_DONT_CONVERT,
		TEXTURE_MAP_LIGHT,
		TEXTURE_MAP_OCCLUSION,
		TEXTURE_MAP_BUMP:
		d.HasAlpha = false
	default:
		d.HasAlpha = sourceHasAlpha(tex, insp)
	}

	if mapType == TEXTURE_MAP_BUMP {
		// Packed normals must be read without gamma correction.
		d.ColorSpace = COLOR_SPACE_RAW
	}

	d.CanUseJpeg = !d.HasAlpha && opts.UseTextureFileTypeHeuristic
	if d.CanUseJpeg {
		d.Ext = EXT_JPG
	} else {
		d.Ext = EXT_PNG
	}
	return d
}

// sourceHasAlpha is the introspection heuristic for map types without an
// override. An authoring-time alpha-source declaration wins when the
// inspector has one; otherwise the native pixel format decides, with
// unknown formats conservatively reporting alpha.
func sourceHasAlpha(tex *Texture, insp SourceAssetInspector) bool {
	if insp != nil {
		if src, ok := insp.AlphaSource(tex); ok {
			return src != ALPHA_SOURCE_NONE
		}
	}
	return FormatHasAlpha(tex.Format)
}
