package route_test

import (
	"reflect"
	"testing"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/route"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"dotted string", "a.b.c", []string{"a", "b", "c"}},
		{"single segment", "layer", []string{"layer"}},
		{"path type", route.Path("sky.moon"), []string{"sky", "moon"}},
		{"string slice", []string{"layer", "node"}, []string{"layer", "node"}},
		{"empty string slice", []string{}, nil},
		{"path slice", []route.Path{"a", "b"}, []string{"a", "b"}},
		{"enum slice", []command.Resource{command.ResourceStars, command.ResourceMoon}, []string{"stars", "moon"}},
		{"mixed enum slice", []command.Action{command.ActionGet}, []string{"get"}},
		{"unrecognized int", 42, nil},
		{"unrecognized int slice", []int{1, 2}, nil},
		{"unrecognized map", map[string]string{"a": "b"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := route.Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	got := route.Normalize(in)
	got[0] = "mutated"
	if in[0] != "a" {
		t.Error("Normalize aliased the caller's slice")
	}
}
