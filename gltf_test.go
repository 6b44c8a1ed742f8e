package gltftex

import (
	"bytes"
	"testing"
)

func TestCreateDoc(t *testing.T) {
	doc := CreateDoc()

	if doc == nil {
		t.Fatal("CreateDoc() returned nil")
	}
	if doc.Asset.Version != GLTF_VERSION {
		t.Errorf("Expected GLTF version %s, got %s", GLTF_VERSION, doc.Asset.Version)
	}
	if len(doc.Scenes) != 1 {
		t.Errorf("Expected 1 scene, got %d", len(doc.Scenes))
	}
	if doc.Scene == nil {
		t.Error("Scene index should not be nil")
	} else if *doc.Scene != 0 {
		t.Errorf("Expected scene index 0, got %d", *doc.Scene)
	}
	if len(doc.Buffers) != 1 {
		t.Errorf("Expected 1 buffer, got %d", len(doc.Buffers))
	}
}

func TestCalcPadding(t *testing.T) {
	cases := []struct{ offset, unit, want int }{
		{0, 4, 0},
		{1, 4, 3},
		{2, 4, 2},
		{3, 4, 1},
		{4, 4, 0},
		{5, 8, 3},
	}
	for _, c := range cases {
		if got := calcPadding(c.offset, c.unit); got != c.want {
			t.Errorf("calcPadding(%d, %d) = %d, want %d", c.offset, c.unit, got, c.want)
		}
	}
}

func TestGetGltfBinary(t *testing.T) {
	opts := DefaultExportOptions()
	opts.UseInternalBuffer = true
	e := NewExporter(nil, opts)
	if _, err := e.ExportTexture(rgbaTexture(1, "t", 4, 4), TEXTURE_MAP_MAIN); err != nil {
		t.Fatalf("ExportTexture failed: %v", err)
	}
	if err := e.WriteImages(""); err != nil {
		t.Fatalf("WriteImages failed: %v", err)
	}

	bt, err := GetGltfBinary(e.Doc, 8)
	if err != nil {
		t.Fatalf("GetGltfBinary failed: %v", err)
	}
	if len(bt)%8 != 0 {
		t.Errorf("binary length %d not padded to 8", len(bt))
	}
	if !bytes.Equal(bt[:4], []byte("glTF")) {
		t.Errorf("missing GLB magic, got %q", bt[:4])
	}
}
