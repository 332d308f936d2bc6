package profiling

import (
	"strings"
	"testing"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	defer Reset()

	Track("terrain.Generate")()
	Track("terrain.Generate")()
	Track("player.Move")()

	if c := Count("terrain.Generate"); c != 2 {
		t.Errorf("Expected 2 samples, got %d", c)
	}
	snap := Snapshot()
	if _, ok := snap["player.Move"]; !ok {
		t.Errorf("Expected player.Move bucket in snapshot")
	}
	if SumWithPrefix("terrain.") < snap["terrain.Generate"] {
		t.Errorf("Expected prefix sum to include terrain.Generate")
	}
}

func TestTopNFormat(t *testing.T) {
	Reset()
	defer Reset()

	Track("a")()
	Track("b")()
	out := TopN(5)
	if !strings.Contains(out, "a:") || !strings.Contains(out, "b:") {
		t.Errorf("Expected both buckets in %q", out)
	}
	if !strings.HasSuffix(out, "ms") {
		t.Errorf("Expected ms suffix in %q", out)
	}
	if TopN(0) != "" {
		t.Errorf("Expected empty string for n=0")
	}
}

func TestDisabledSkipsRecording(t *testing.T) {
	Reset()
	SetEnabled(false)
	defer SetEnabled(true)

	Track("x")()
	if Count("x") != 0 {
		t.Errorf("Expected no samples while disabled")
	}
}
