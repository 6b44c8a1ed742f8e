package gltftex

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"
)

var ErrNilTexture = errors.New("nil texture passed for export")

// PendingImageExport is one queued image write. Created the first time a
// (texture, map type) pair is referenced, consumed exactly once by
// WriteImages. Queue order defines write order.
type PendingImageExport struct {
	Texture     *Texture
	MapType     TextureMapType
	Name        string
	OutPath     string
	SourcePath  string
	Passthrough bool
	Decision    FormatDecision
	ImageId     uint32
}

type imageKey struct {
	id      int32
	mapType TextureMapType
}

// Exporter runs one texture export session against a glTF document. It is
// single threaded: textures are processed one at a time and the registries
// and buffer cursor are only touched from that sequential pass.
type Exporter struct {
	Doc       *gltf.Document
	Opts      *ExportOptions
	Inspector SourceAssetInspector
	Logger    *zap.Logger

	imageIds   map[imageKey]uint32
	textureIds map[imageKey]uint32
	samplerIds map[int32]uint32
	pending    []*PendingImageExport
}

func NewExporter(doc *gltf.Document, opts *ExportOptions) *Exporter {
	if doc == nil {
		doc = CreateDoc()
	}
	if opts == nil {
		opts = DefaultExportOptions()
	}
	return &Exporter{
		Doc:        doc,
		Opts:       opts,
		Inspector:  NoopInspector{},
		Logger:     zap.NewNop(),
		imageIds:   make(map[imageKey]uint32),
		textureIds: make(map[imageKey]uint32),
		samplerIds: make(map[int32]uint32),
	}
}

func (e *Exporter) WithInspector(insp SourceAssetInspector) *Exporter {
	if insp != nil {
		e.Inspector = insp
	}
	return e
}

func (e *Exporter) WithLogger(lg *zap.Logger) *Exporter {
	if lg != nil {
		e.Logger = lg
	}
	return e
}

// Pending returns the queued image exports not yet written.
func (e *Exporter) Pending() []*PendingImageExport {
	return e.pending
}

// ExportTexture registers a texture under a map type and returns its id in
// the document's texture array. The first call for a pair allocates image,
// sampler and texture entries and queues the image write; later calls with
// the same pair return the same id without queuing anything.
func (e *Exporter) ExportTexture(tex *Texture, mapType TextureMapType) (uint32, error) {
	if tex == nil {
		return 0, ErrNilTexture
	}
	key := imageKey{tex.Id, mapType}
	if id, ok := e.textureIds[key]; ok {
		return id, nil
	}

	samplerId, err := e.ExportSampler(tex)
	if err != nil {
		return 0, err
	}
	imageId := e.getOrCreateImage(tex, mapType)

	gt := &gltf.Texture{Sampler: &samplerId, Source: &imageId}
	if e.Opts.ExportNames {
		gt.Name = e.Doc.Images[imageId].Name
	}
	id := uint32(len(e.Doc.Textures))
	e.Doc.Textures = append(e.Doc.Textures, gt)
	e.textureIds[key] = id
	return id, nil
}

// ExportImage registers only the image for a texture and map type,
// returning its id in the document's image array.
func (e *Exporter) ExportImage(tex *Texture, mapType TextureMapType) (uint32, error) {
	if tex == nil {
		return 0, ErrNilTexture
	}
	return e.getOrCreateImage(tex, mapType), nil
}

func (e *Exporter) getOrCreateImage(tex *Texture, mapType TextureMapType) uint32 {
	key := imageKey{tex.Id, mapType}
	if id, ok := e.imageIds[key]; ok {
		return id
	}

	// An unnamed texture gets a synthetic name derived from the image
	// array length before any path is computed, so output filenames are
	// never empty and never collide.
	name := tex.Name
	if name == "" {
		name = strconv.Itoa(len(e.Doc.Images) + 1)
	}

	p := &PendingImageExport{Texture: tex, MapType: mapType, Name: name}
	if src, outBase, ok := e.resolvePassthrough(tex, mapType, name); ok {
		p.Passthrough = true
		p.SourcePath = src
		p.OutPath = e.outputPath(outBase, strings.ToLower(filepath.Ext(src)), src)
	} else {
		p.Decision = DecideFormat(tex, mapType, e.Opts, e.Inspector)
		srcPath, _ := e.Inspector.SourcePath(tex)
		p.OutPath = e.outputPath(name, p.Decision.Ext, srcPath)
	}

	img := &gltf.Image{}
	if e.Opts.ExportNames {
		img.Name = name
	}
	id := uint32(len(e.Doc.Images))
	e.Doc.Images = append(e.Doc.Images, img)
	p.ImageId = id
	e.imageIds[key] = id
	e.pending = append(e.pending, p)
	return id
}

// outputPath builds the relative output path for an image. With
// ExportFullPath set and a known source location the source directory
// hierarchy is kept, otherwise the file lands flat in the output root.
func (e *Exporter) outputPath(base, ext, srcPath string) string {
	if e.Opts.ExportFullPath && srcPath != "" {
		dir := path.Dir(filepath.ToSlash(srcPath))
		dir = strings.TrimPrefix(dir, "/")
		if dir != "" && dir != "." {
			return path.Join(dir, base+ext)
		}
	}
	return base + ext
}
