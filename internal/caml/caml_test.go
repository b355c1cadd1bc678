package caml

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"howett.net/plist"
)

func testParams() LayerParams {
	return LayerParams{
		Width:      1290,
		Height:     2796,
		FrameCount: 150,
		FPS:        30,
		Duration:   5,
	}
}

func TestFrameDuration(t *testing.T) {
	for _, fps := range []float64{23.976, 24, 30, 59.94, 120} {
		p := LayerParams{FPS: fps}
		if got := p.FrameDuration() * fps; math.Abs(got-1) > 1e-9 {
			t.Fatalf("frameDuration*fps = %v for fps=%v, want 1", got, fps)
		}
	}
	if got := (LayerParams{FPS: 0}).FrameDuration(); got != 0 {
		t.Fatalf("expected 0 frame duration for fps=0, got %v", got)
	}
}

func TestBackgroundMainFields(t *testing.T) {
	data, err := Marshal(BackgroundMain(testParams()))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var doc map[string]interface{}
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	view, ok := doc["view"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing view dict: %v", doc)
	}
	sublayers, ok := view["sublayers"].([]interface{})
	if !ok || len(sublayers) != 1 {
		t.Fatalf("expected one sublayer, got %v", view["sublayers"])
	}
	layer := sublayers[0].(map[string]interface{})
	if layer["bounds"] != "{{0, 0}, {1290, 2796}}" {
		t.Fatalf("unexpected bounds %v", layer["bounds"])
	}
	if layer["type"] != "CALayer" || layer["name"] != "ContentLayer" {
		t.Fatalf("unexpected layer identity: %v", layer)
	}
	contents := layer["contents"].(map[string]interface{})
	if contents["type"] != "ImageSequence" {
		t.Fatalf("unexpected contents type %v", contents["type"])
	}
	if contents["initialImage"] != "assets/00000.jpg" {
		t.Fatalf("unexpected initialImage %v", contents["initialImage"])
	}
	if contents["imageNamePattern"] != "assets/%05d.jpg" {
		t.Fatalf("unexpected pattern %v", contents["imageNamePattern"])
	}
	if count, ok := contents["frameCount"].(uint64); !ok || count != 150 {
		t.Fatalf("unexpected frameCount %v (%T)", contents["frameCount"], contents["frameCount"])
	}
	duration, ok := contents["frameDuration"].(float64)
	if !ok || math.Abs(duration-1.0/30.0) > 1e-12 {
		t.Fatalf("frameDuration must carry full precision, got %v", contents["frameDuration"])
	}
	if loop, ok := contents["loop"].(bool); !ok || !loop {
		t.Fatalf("loop must be enabled, got %v", contents["loop"])
	}
}

func TestIndexFields(t *testing.T) {
	data, err := Marshal(Index(testParams()))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var doc map[string]interface{}
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if doc["assetManifest"] != "assetManifest.caml" {
		t.Fatalf("unexpected assetManifest %v", doc["assetManifest"])
	}
	if w := doc["documentWidth"].(float64); w != 1290 {
		t.Fatalf("unexpected documentWidth %v", w)
	}
	if h := doc["documentHeight"].(float64); h != 2796 {
		t.Fatalf("unexpected documentHeight %v", h)
	}
	if end := doc["loopEnd"].(float64); end != 5 {
		t.Fatalf("unexpected loopEnd %v", end)
	}
	if start := doc["loopStart"].(float64); start != 0 {
		t.Fatalf("unexpected loopStart %v", start)
	}
	for key, want := range map[string]bool{
		"loopingEnabled":                true,
		"geometryFlipped":               false,
		"guidesEnabled":                 true,
		"interactiveTouchEventsEnabled": false,
	} {
		if got, ok := doc[key].(bool); !ok || got != want {
			t.Fatalf("flag %s = %v, want %v", key, doc[key], want)
		}
	}
}

func TestFloatingMainHasNoSublayers(t *testing.T) {
	data, err := Marshal(FloatingMain())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var doc MainDocument
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(doc.View.Sublayers) != 0 {
		t.Fatalf("floating layer must be empty, got %d sublayers", len(doc.View.Sublayers))
	}
}

func TestZeroFrameDocumentsStayValid(t *testing.T) {
	p := LayerParams{Width: 100, Height: 200, FrameCount: 0, FPS: 30, Duration: 0}
	data, err := Marshal(BackgroundMain(p))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var doc MainDocument
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		t.Fatalf("zero-frame document does not parse: %v", err)
	}
	contents := doc.View.Sublayers[0].Contents
	if contents.FrameCount != 0 {
		t.Fatalf("unexpected frameCount %d", contents.FrameCount)
	}
	if math.IsInf(contents.FrameDuration, 0) || math.IsNaN(contents.FrameDuration) {
		t.Fatalf("frameDuration must stay finite, got %v", contents.FrameDuration)
	}
}

func TestWriteBundlesAllThreeDocuments(t *testing.T) {
	p := testParams()
	background := t.TempDir()
	floating := t.TempDir()

	if err := WriteBackground(background, p); err != nil {
		t.Fatalf("WriteBackground: %v", err)
	}
	if err := WriteFloating(floating, p); err != nil {
		t.Fatalf("WriteFloating: %v", err)
	}

	for _, dir := range []string{background, floating} {
		for _, name := range []string{MainDocumentName, IndexDocumentName, AssetManifestName} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("missing %s: %v", name, err)
			}
			if !strings.Contains(string(data), "<!DOCTYPE plist") {
				t.Fatalf("%s is not an XML plist", name)
			}
		}
	}
}
