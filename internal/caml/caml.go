// Package caml builds the Core Animation layer documents embedded in each
// .ca bundle: the main animation document, the index/geometry document, and
// the asset manifest.
//
// Documents are typed structs serialized as XML plists rather than text
// templates, so the key set the renderer expects is fixed at compile time and
// cannot drift from what gets written. Field order inside each struct matches
// the order the lock-screen renderer's own authoring tool emits.
package caml

import (
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"

	"posterforge/internal/services"
)

// File names inside a .ca bundle.
const (
	MainDocumentName  = "main.caml"
	IndexDocumentName = "index.xml"
	AssetManifestName = "assetManifest.caml"
)

// LayerParams carries the geometry and timing both layers share. FrameCount
// and Duration must come from the extraction result, never from container
// metadata.
type LayerParams struct {
	Width      int
	Height     int
	FrameCount int
	FPS        float64
	Duration   float64
}

// FrameDuration returns the per-frame display time, 0 when the frame rate is
// unknown so a zero-frame source still yields a valid document.
func (p LayerParams) FrameDuration() float64 {
	if p.FPS <= 0 {
		return 0
	}
	return 1 / p.FPS
}

// MainDocument is the top-level animation document.
type MainDocument struct {
	View View `plist:"view"`
}

// View is the root layer container.
type View struct {
	BackgroundColor     string  `plist:"backgroundColor"`
	DrawsAsynchronously bool    `plist:"drawsAsynchronously"`
	Sublayers           []Layer `plist:"sublayers"`
}

// Layer describes one sublayer of the view.
type Layer struct {
	Bounds   string         `plist:"bounds"`
	Contents *ImageSequence `plist:"contents"`
	Name     string         `plist:"name"`
	Position string         `plist:"position"`
	Type     string         `plist:"type"`
}

// ImageSequence drives frame playback for a layer.
type ImageSequence struct {
	InitialImage     string  `plist:"initialImage"`
	FrameDuration    float64 `plist:"frameDuration"`
	FrameCount       int     `plist:"frameCount"`
	ImageFormat      string  `plist:"imageFormat"`
	ImageNamePattern string  `plist:"imageNamePattern"`
	Loop             bool    `plist:"loop"`
	Type             string  `plist:"type"`
}

// IndexDocument declares the document geometry, loop window, and the
// authoring-tool flags the renderer requires for structural validity.
type IndexDocument struct {
	AssetManifest                 string  `plist:"assetManifest"`
	DocumentHeight                float64 `plist:"documentHeight"`
	DocumentResizesToView         bool    `plist:"documentResizesToView"`
	DocumentWidth                 float64 `plist:"documentWidth"`
	DynamicGuidesEnabled          bool    `plist:"dynamicGuidesEnabled"`
	GeometryFlipped               bool    `plist:"geometryFlipped"`
	GuidesEnabled                 bool    `plist:"guidesEnabled"`
	InteractiveMouseEventsEnabled bool    `plist:"interactiveMouseEventsEnabled"`
	InteractiveShowsCursor        bool    `plist:"interactiveShowsCursor"`
	InteractiveTouchEventsEnabled bool    `plist:"interactiveTouchEventsEnabled"`
	LoopEnd                       float64 `plist:"loopEnd"`
	LoopStart                     float64 `plist:"loopStart"`
	LoopingEnabled                bool    `plist:"loopingEnabled"`
	MultitouchDisablesMouse       bool    `plist:"multitouchDisablesMouse"`
	MultitouchEnabled             bool    `plist:"multitouchEnabled"`
}

// BackgroundMain builds the image-sequence animation document for the
// background layer.
func BackgroundMain(p LayerParams) MainDocument {
	return MainDocument{
		View: View{
			BackgroundColor: "0 0 0 0",
			Sublayers: []Layer{
				{
					Bounds: fmt.Sprintf("{{0, 0}, {%d, %d}}", p.Width, p.Height),
					Contents: &ImageSequence{
						InitialImage:     "assets/00000.jpg",
						FrameDuration:    p.FrameDuration(),
						FrameCount:       p.FrameCount,
						ImageFormat:      "jpg",
						ImageNamePattern: "assets/%05d.jpg",
						Loop:             true,
						Type:             "ImageSequence",
					},
					Name:     "ContentLayer",
					Position: "{{0, 0}}",
					Type:     "CALayer",
				},
			},
		},
	}
}

// FloatingMain builds the structurally valid but empty document used by the
// floating layer, which carries no animated content.
func FloatingMain() MainDocument {
	return MainDocument{
		View: View{
			BackgroundColor: "0 0 0 0",
			Sublayers:       []Layer{},
		},
	}
}

// Index builds the geometry/timing document. It is numerically identical for
// both layers.
func Index(p LayerParams) IndexDocument {
	return IndexDocument{
		AssetManifest:                 AssetManifestName,
		DocumentHeight:                float64(p.Height),
		DocumentResizesToView:         true,
		DocumentWidth:                 float64(p.Width),
		DynamicGuidesEnabled:          true,
		GeometryFlipped:               false,
		GuidesEnabled:                 true,
		InteractiveMouseEventsEnabled: true,
		InteractiveShowsCursor:        true,
		InteractiveTouchEventsEnabled: false,
		LoopEnd:                       p.Duration,
		LoopStart:                     0.0,
		LoopingEnabled:                true,
		MultitouchDisablesMouse:       false,
		MultitouchEnabled:             false,
	}
}

// WriteBackground writes the three background-layer documents into the .ca
// bundle directory.
func WriteBackground(bundleDir string, p LayerParams) error {
	if err := writeDocument(bundleDir, MainDocumentName, BackgroundMain(p)); err != nil {
		return err
	}
	if err := writeDocument(bundleDir, IndexDocumentName, Index(p)); err != nil {
		return err
	}
	return writeDocument(bundleDir, AssetManifestName, struct{}{})
}

// WriteFloating writes the three floating-layer documents into the .ca
// bundle directory.
func WriteFloating(bundleDir string, p LayerParams) error {
	if err := writeDocument(bundleDir, MainDocumentName, FloatingMain()); err != nil {
		return err
	}
	if err := writeDocument(bundleDir, IndexDocumentName, Index(p)); err != nil {
		return err
	}
	return writeDocument(bundleDir, AssetManifestName, struct{}{})
}

func writeDocument(dir, name string, doc any) error {
	data, err := Marshal(doc)
	if err != nil {
		return services.Wrap(services.ErrSerialization, "layer documents", "marshal "+name, "Failed to serialize layer document", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return services.Wrap(services.ErrSerialization, "layer documents", "write "+name, "Failed to write layer document", err)
	}
	return nil
}

// Marshal serializes a document as an indented XML plist.
func Marshal(doc any) ([]byte, error) {
	return plist.MarshalIndent(doc, plist.XMLFormat, "\t")
}
