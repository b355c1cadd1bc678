package ffprobe

import (
	"math"
	"testing"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video", Width: 1280, Height: 720},
			{CodecType: "audio"},
		},
		Format: Format{
			Duration: "5.0",
			Size:     "1000",
		},
	}
	if result.VideoStreamCount() != 1 {
		t.Fatalf("expected 1 video stream, got %d", result.VideoStreamCount())
	}
	stream, ok := result.FirstVideoStream()
	if !ok || stream.Width != 1280 {
		t.Fatalf("unexpected first video stream: %+v ok=%v", stream, ok)
	}
	if result.DurationSeconds() != 5.0 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
}

func TestDurationSecondsMalformed(t *testing.T) {
	for _, duration := range []string{"", "N/A", "abc", "1.2.3"} {
		result := Result{Format: Format{Duration: duration}}
		if got := result.DurationSeconds(); got != 0 {
			t.Fatalf("duration %q: got %v, want 0", duration, got)
		}
	}
}

func TestFrameRateParsing(t *testing.T) {
	cases := []struct {
		stream Stream
		want   float64
	}{
		{Stream{AvgFrameRate: "30/1"}, 30},
		{Stream{AvgFrameRate: "30000/1001"}, 30000.0 / 1001.0},
		{Stream{RFrameRate: "25"}, 25},
		{Stream{AvgFrameRate: "0/0", RFrameRate: "24/1"}, 24},
		{Stream{}, 0},
		{Stream{AvgFrameRate: "garbage"}, 0},
	}
	for _, tc := range cases {
		got := tc.stream.FrameRate()
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("FrameRate(%+v) = %v, want %v", tc.stream, got, tc.want)
		}
	}
}

func TestFrameCountParsing(t *testing.T) {
	if got := (Stream{NBFrames: "150"}).FrameCount(); got != 150 {
		t.Fatalf("expected 150, got %d", got)
	}
	if got := (Stream{NBFrames: "N/A"}).FrameCount(); got != 0 {
		t.Fatalf("expected 0 for unparsable, got %d", got)
	}
	if got := (Stream{}).FrameCount(); got != 0 {
		t.Fatalf("expected 0 for empty, got %d", got)
	}
}
