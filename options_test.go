package gltftex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultExportOptions(t *testing.T) {
	opts := DefaultExportOptions()
	if !opts.ExportNames {
		t.Error("names should be exported by default")
	}
	if opts.DefaultJpegQuality != 90 {
		t.Errorf("default jpeg quality = %d, want 90", opts.DefaultJpegQuality)
	}
	if opts.UseTextureFileTypeHeuristic || opts.UseInternalBuffer || opts.TryExportTexturesFromDisk {
		t.Error("heuristic, internal buffer and disk passthrough should default off")
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadExportOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.yaml")
	data := []byte("use_internal_buffer: true\ndefault_jpeg_quality: 75\nuse_texture_file_type_heuristic: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadExportOptions(path)
	if err != nil {
		t.Fatalf("LoadExportOptions failed: %v", err)
	}
	if !opts.UseInternalBuffer || !opts.UseTextureFileTypeHeuristic {
		t.Error("file values not applied")
	}
	if opts.DefaultJpegQuality != 75 {
		t.Errorf("quality = %d, want 75", opts.DefaultJpegQuality)
	}
	if !opts.ExportNames {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoadExportOptionsInvalidQuality(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.yaml")
	if err := os.WriteFile(path, []byte("default_jpeg_quality: 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadExportOptions(path); err == nil {
		t.Error("expected validation error for quality 150")
	}
}

func TestLoadExportOptionsMissingFile(t *testing.T) {
	if _, err := LoadExportOptions(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
