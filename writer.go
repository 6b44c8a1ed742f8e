package gltftex

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// WriteImages consumes the pending export queue in order. Depending on
// UseInternalBuffer each image either becomes a loose file under baseDir or
// a byte range in the document's buffer 0. A failure fails the session:
// there is no partial success for a single texture and no retry.
func (e *Exporter) WriteImages(baseDir string) error {
	for _, p := range e.pending {
		var err error
		if e.Opts.UseInternalBuffer {
			err = e.writeToBuffer(p)
		} else {
			err = e.writeToFile(p, baseDir)
		}
		if err != nil {
			return errors.Wrapf(err, "export image %q", p.Name)
		}
	}
	e.pending = nil
	return nil
}

// encodePending produces the encoded image bytes and their MIME type. The
// passthrough and re-encode paths are mutually exclusive; both writers go
// through here so they can never disagree on the container for one input.
func (e *Exporter) encodePending(p *PendingImageExport) ([]byte, string, error) {
	if p.Passthrough {
		data, err := os.ReadFile(p.SourcePath)
		if err != nil {
			return nil, "", errors.Wrapf(err, "read source file %s", p.SourcePath)
		}
		return data, extMimeType(p.SourcePath), nil
	}

	var img *image.NRGBA
	if p.MapType == TEXTURE_MAP_CUBE {
		faces, err := p.Texture.ReadFaces(p.Decision.ColorSpace)
		if err != nil {
			return nil, "", err
		}
		img, err = CubemapToEquirect(faces)
		if err != nil {
			return nil, "", err
		}
	} else {
		src, err := p.Texture.ReadPixels(p.Decision.ColorSpace)
		if err != nil {
			return nil, "", err
		}
		img = ConvertImage(src, p.MapType)
	}

	var buf bytes.Buffer
	if p.Decision.CanUseJpeg {
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.Opts.DefaultJpegQuality}); err != nil {
			return nil, "", errors.Wrap(err, "encode jpeg")
		}
	} else {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", errors.Wrap(err, "encode png")
		}
	}
	return buf.Bytes(), p.Decision.MimeType(), nil
}

func (e *Exporter) writeToFile(p *PendingImageExport, baseDir string) error {
	data, _, err := e.encodePending(p)
	if err != nil {
		return err
	}

	dest := filepath.Join(baseDir, filepath.FromSlash(p.OutPath))
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return errors.Wrapf(err, "create output directory %s", filepath.Dir(dest))
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", dest)
	}

	e.Doc.Images[p.ImageId].URI = escapeImageURI(p.OutPath)
	return nil
}

func (e *Exporter) writeToBuffer(p *PendingImageExport) error {
	data, mime, err := e.encodePending(p)
	if err != nil {
		return err
	}

	buffer := e.Doc.Buffers[0]

	// Zero-pad up to the aligned start offset, then round the recorded
	// length up to the next 4-byte boundary. The MIME type still reflects
	// the true unpadded content.
	if pad := calcPadding(int(buffer.ByteLength), 4); pad > 0 {
		buffer.Data = append(buffer.Data, make([]byte, pad)...)
		buffer.ByteLength += uint32(pad)
	}
	viewLen := len(data) + calcPadding(len(data), 4)

	bv := &gltf.BufferView{
		Buffer:     0,
		ByteOffset: buffer.ByteLength,
		ByteLength: uint32(viewLen),
	}
	buffer.Data = append(buffer.Data, data...)
	if tail := viewLen - len(data); tail > 0 {
		buffer.Data = append(buffer.Data, make([]byte, tail)...)
	}
	buffer.ByteLength += uint32(viewLen)

	bvId := uint32(len(e.Doc.BufferViews))
	e.Doc.BufferViews = append(e.Doc.BufferViews, bv)

	img := e.Doc.Images[p.ImageId]
	img.BufferView = &bvId
	img.MimeType = mime
	return nil
}

func extMimeType(p string) string {
	switch strings.ToLower(filepath.Ext(p)) {
	case EXT_JPG, EXT_JPEG:
		return MIME_JPG
	}
	return MIME_PNG
}

// escapeImageURI percent-encodes a relative output path for use as a glTF
// image URI. The directory component is escaped per URI path rules, which
// keep '/' separators intact, while the filename is escaped as a single
// path segment where every reserved character is data. The two halves are
// escaped separately and rejoined. Note that '#' is encoded in both
// halves: a raw '#' in a directory segment would start the URI fragment
// and truncate the path for any conforming reader.
func escapeImageURI(rel string) string {
	dir, file := path.Split(rel)
	escDir := (&url.URL{Path: dir}).EscapedPath()
	return escDir + url.PathEscape(file)
}
