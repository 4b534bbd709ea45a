package route_test

import (
	"reflect"
	"testing"

	"github.com/skywatch-cli/skywatch/internal/route"
)

func TestPathSegments(t *testing.T) {
	tests := []struct {
		path route.Path
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		// Empty segments between dots are preserved as ordinary keys.
		{"a..b", []string{"a", "", "b"}},
		{".a", []string{"", "a"}},
	}

	for _, tt := range tests {
		got := tt.path.Segments()
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Segments(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPathSegmentCount(t *testing.T) {
	tests := []struct {
		path route.Path
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a.b.c", 3},
		{"a..b", 3},
	}

	for _, tt := range tests {
		if got := tt.path.SegmentCount(); got != tt.want {
			t.Errorf("SegmentCount(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestPathParentBaseChild(t *testing.T) {
	p := route.Path("sky.stars.search")

	if got := p.Parent(); got != "sky.stars" {
		t.Errorf("Parent = %q", got)
	}
	if got := p.Base(); got != "search" {
		t.Errorf("Base = %q", got)
	}
	if got := route.Path("sky").Parent(); got != "" {
		t.Errorf("Parent of single segment = %q, want empty", got)
	}
	if got := route.Path("").Child("sky"); got != "sky" {
		t.Errorf("Child on empty = %q", got)
	}
	if got := route.Path("sky").Child("moon"); got != "sky.moon" {
		t.Errorf("Child = %q", got)
	}
}

func TestJoin(t *testing.T) {
	if got := route.Join("a", "b", "c"); got != "a.b.c" {
		t.Errorf("Join = %q", got)
	}
	if got := route.Join(); got != "" {
		t.Errorf("Join() = %q, want empty", got)
	}
}
