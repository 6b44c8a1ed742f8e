package gltftex

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ExportOptions controls the texture export session.
type ExportOptions struct {
	// ExportNames propagates human-readable names onto images and textures.
	ExportNames bool `yaml:"export_names"`
	// TryExportTexturesFromDisk copies the original asset file verbatim
	// when the map type allows it.
	TryExportTexturesFromDisk bool `yaml:"try_export_textures_from_disk"`
	// ExportFullPath keeps the source asset's directory hierarchy in the
	// output path instead of writing a flat file.
	ExportFullPath bool `yaml:"export_full_path"`
	// UseTextureFileTypeHeuristic enables JPEG output for textures without
	// alpha.
	UseTextureFileTypeHeuristic bool `yaml:"use_texture_file_type_heuristic"`
	// DefaultJpegQuality is the encoder quality for JPEG output, 0-100.
	DefaultJpegQuality int `yaml:"default_jpeg_quality"`
	// UseInternalBuffer embeds images into the document's binary buffer
	// instead of writing loose files. Selected once per session.
	UseInternalBuffer bool `yaml:"use_internal_buffer"`
}

func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		ExportNames:        true,
		DefaultJpegQuality: 90,
	}
}

// LoadExportOptions reads options from a yaml file on top of the defaults.
func LoadExportOptions(path string) (*ExportOptions, error) {
	opts := DefaultExportOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read export options %s", path)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, errors.Wrapf(err, "parse export options %s", path)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *ExportOptions) Validate() error {
	if o.DefaultJpegQuality < 0 || o.DefaultJpegQuality > 100 {
		return errors.Errorf("default_jpeg_quality %d out of range 0-100", o.DefaultJpegQuality)
	}
	return nil
}
