package handlers_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
	"github.com/skywatch-cli/skywatch/internal/handlers"
)

var testCatalog = []handlers.Star{
	{Name: "Sirius", Constellation: "Canis Major", Magnitude: -1.46},
	{Name: "Canopus", Constellation: "Carina", Magnitude: -0.74},
	{Name: "Arcturus", Constellation: "Boötes", Magnitude: -0.05},
	{Name: "Vega", Constellation: "Lyra", Magnitude: 0.03},
	{Name: "Capella", Constellation: "Auriga", Magnitude: 0.08},
	{Name: "Rigel", Constellation: "Orion", Magnitude: 0.13},
	{Name: "Procyon", Constellation: "Canis Minor", Magnitude: 0.34},
	{Name: "Betelgeuse", Constellation: "Orion", Magnitude: 0.50},
}

func starNames(t *testing.T, res handler.Result) []string {
	t.Helper()
	if !res.IsOK() {
		t.Fatalf("result = %+v", res)
	}
	got, ok := res.Value.([]string)
	if !ok {
		t.Fatalf("value = %T, want []string", res.Value)
	}
	return got
}

func TestStarsGetFirstPage(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewStarsHandlerWithCatalog(&out, testCatalog)

	got := starNames(t, h.Get(command.New(command.ActionGet, command.ResourceStars)))
	want := []string{"Sirius", "Canopus", "Arcturus", "Vega", "Capella"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), "Sirius\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestStarsGetPagination(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewStarsHandlerWithCatalog(&out, testCatalog)

	args := command.New(command.ActionGet, command.ResourceStars).WithPage(1)
	got := starNames(t, h.Get(args))
	want := []string{"Rigel", "Procyon", "Betelgeuse"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("page 1 = %v, want %v", got, want)
	}

	args = command.New(command.ActionGet, command.ResourceStars).WithSkip(6)
	got = starNames(t, h.Get(args))
	want = []string{"Procyon", "Betelgeuse"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("skip 6 = %v, want %v", got, want)
	}

	// Page past the end yields nothing.
	args = command.New(command.ActionGet, command.ResourceStars).WithPage(9)
	if got := starNames(t, h.Get(args)); len(got) != 0 {
		t.Errorf("page 9 = %v, want empty", got)
	}
}

func TestStarsNegativePageAndSkip(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewStarsHandlerWithCatalog(&out, testCatalog)

	// Negative values behave like zero instead of slicing out of range.
	args := command.New(command.ActionGet, command.ResourceStars).WithPage(-1)
	got := starNames(t, h.Get(args))
	want := []string{"Sirius", "Canopus", "Arcturus", "Vega", "Capella"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("page -1 = %v, want %v", got, want)
	}

	args = command.New(command.ActionGet, command.ResourceStars).WithSkip(-3)
	if got := starNames(t, h.Get(args)); !reflect.DeepEqual(got, want) {
		t.Errorf("skip -3 = %v, want %v", got, want)
	}
}

func TestStarsSearch(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewStarsHandlerWithCatalog(&out, testCatalog)

	// Query via the data field, matching constellations case-insensitively.
	args := command.New(command.ActionSearch, command.ResourceStars).WithData("orion")
	got := starNames(t, h.Search(args))
	want := []string{"Rigel", "Betelgeuse"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("search orion = %v, want %v", got, want)
	}

	// Positional fallback when no data flag is given.
	got = starNames(t, h.Search(command.New(command.ActionSearch, command.ResourceStars, "vega")))
	if !reflect.DeepEqual(got, []string{"Vega"}) {
		t.Errorf("search vega = %v", got)
	}

	// No matches is a valid, empty result.
	args = command.New(command.ActionSearch, command.ResourceStars).WithData("polaris")
	if got := starNames(t, h.Search(args)); len(got) != 0 {
		t.Errorf("search polaris = %v, want empty", got)
	}
}

func TestStarsSearchRequiresQuery(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewStarsHandlerWithCatalog(&out, testCatalog)

	res := h.Search(command.New(command.ActionSearch, command.ResourceStars))
	if res.Status != handler.StatusError {
		t.Fatalf("status = %v, want error", res.Status)
	}
}

func TestStarsVerboseOutput(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewStarsHandlerWithCatalog(&out, testCatalog)

	args := command.New(command.ActionSearch, command.ResourceStars).
		WithData("sirius").
		WithVerbose(true)
	starNames(t, h.Search(args))

	want := "Sirius (Canis Major, magnitude -1.46)\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestStarsSilent(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewStarsHandlerWithCatalog(&out, testCatalog)

	args := command.New(command.ActionGet, command.ResourceStars)
	args.Silent = true
	starNames(t, h.Get(args))
	if out.Len() != 0 {
		t.Errorf("silent mode still printed %q", out.String())
	}
}
