package gltftex

import (
	"bytes"

	"github.com/qmuntal/gltf"
)

const GLTF_VERSION = "2.0"

// CreateDoc creates an empty glTF document with one scene and the shared
// binary buffer the internal-buffer writer appends to.
func CreateDoc() *gltf.Document {
	doc := &gltf.Document{}
	doc.Asset.Version = GLTF_VERSION
	srcIndex := uint32(0)
	doc.Scene = &srcIndex
	doc.Scenes = append(doc.Scenes, &gltf.Scene{})
	doc.Buffers = append(doc.Buffers, &gltf.Buffer{})
	return doc
}

// calcPadding returns the byte count needed to grow offset to the next
// multiple of paddingUnit.
func calcPadding(offset, paddingUnit int) int {
	padding := offset % paddingUnit
	if padding != 0 {
		padding = paddingUnit - padding
	}
	return padding
}

// GetGltfBinary encodes the document as GLB, space-padded to a multiple of
// paddingUnit.
func GetGltfBinary(doc *gltf.Document, paddingUnit int) ([]byte, error) {
	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if padding := calcPadding(buf.Len(), paddingUnit); padding > 0 {
		pad := make([]byte, padding)
		for i := range pad {
			pad[i] = 0x20
		}
		buf.Write(pad)
	}
	return buf.Bytes(), nil
}
