package gltftex

// SourceAssetInspector recovers authoring-time metadata for a texture from
// the host's asset database. Runtime-only hosts use NoopInspector, which
// reports no source information instead of compiling the capability out.
type SourceAssetInspector interface {
	// SourcePath returns the on-disk file the texture was imported from.
	SourcePath(tex *Texture) (string, bool)
	// AlphaSource returns the declared alpha source, when the importer
	// recorded one.
	AlphaSource(tex *Texture) (AlphaSource, bool)
	// NormalFromGrayscale reports whether the importer generated the
	// normal map from a grayscale height input.
	NormalFromGrayscale(tex *Texture) bool
	// MainAssetIs2D reports whether the main asset at the given source
	// path is a plain 2D texture. Sub-assets sharing one file need
	// disambiguated output names.
	MainAssetIs2D(path string) bool
}

// NoopInspector is the inspector for hosts without asset-database access.
type NoopInspector struct{}

func (NoopInspector) SourcePath(*Texture) (string, bool)       { return "", false }
func (NoopInspector) AlphaSource(*Texture) (AlphaSource, bool) { return 0, false }
func (NoopInspector) NormalFromGrayscale(*Texture) bool        { return false }
func (NoopInspector) MainAssetIs2D(string) bool                { return true }
