package handlers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
)

// defaultPageSize bounds get/search output per page.
const defaultPageSize = 5

// Star is one catalog entry.
type Star struct {
	Name          string
	Constellation string
	Magnitude     float64
}

// defaultCatalog is a small bright-star catalog, ordered by magnitude.
var defaultCatalog = []Star{
	{Name: "Sirius", Constellation: "Canis Major", Magnitude: -1.46},
	{Name: "Canopus", Constellation: "Carina", Magnitude: -0.74},
	{Name: "Rigil Kentaurus", Constellation: "Centaurus", Magnitude: -0.27},
	{Name: "Arcturus", Constellation: "Boötes", Magnitude: -0.05},
	{Name: "Vega", Constellation: "Lyra", Magnitude: 0.03},
	{Name: "Capella", Constellation: "Auriga", Magnitude: 0.08},
	{Name: "Rigel", Constellation: "Orion", Magnitude: 0.13},
	{Name: "Procyon", Constellation: "Canis Minor", Magnitude: 0.34},
	{Name: "Achernar", Constellation: "Eridanus", Magnitude: 0.46},
	{Name: "Betelgeuse", Constellation: "Orion", Magnitude: 0.50},
	{Name: "Hadar", Constellation: "Centaurus", Magnitude: 0.61},
	{Name: "Altair", Constellation: "Aquila", Magnitude: 0.76},
	{Name: "Acrux", Constellation: "Crux", Magnitude: 0.77},
	{Name: "Aldebaran", Constellation: "Taurus", Magnitude: 0.86},
	{Name: "Antares", Constellation: "Scorpius", Magnitude: 0.96},
	{Name: "Spica", Constellation: "Virgo", Magnitude: 0.97},
	{Name: "Pollux", Constellation: "Gemini", Magnitude: 1.14},
	{Name: "Fomalhaut", Constellation: "Piscis Austrinus", Magnitude: 1.16},
	{Name: "Deneb", Constellation: "Cygnus", Magnitude: 1.25},
	{Name: "Mimosa", Constellation: "Crux", Magnitude: 1.25},
}

// StarsHandler serves catalog queries over the stars resource.
type StarsHandler struct {
	out     io.Writer
	catalog []Star
}

// NewStarsHandler creates a stars handler over the default catalog.
func NewStarsHandler(out io.Writer) *StarsHandler {
	return NewStarsHandlerWithCatalog(out, defaultCatalog)
}

// NewStarsHandlerWithCatalog creates a stars handler over a custom catalog.
func NewStarsHandlerWithCatalog(out io.Writer, catalog []Star) *StarsHandler {
	if out == nil {
		out = os.Stdout
	}
	return &StarsHandler{out: out, catalog: catalog}
}

// Get lists catalog entries, honoring the optional page and skip fields.
func (h *StarsHandler) Get(args command.Args) handler.Result {
	stars := paginate(h.catalog, args.PageOr(0), args.SkipOr(0))
	h.print(args, stars)
	return handler.OKWithValue(names(stars))
}

// Search finds catalog entries whose name or constellation contains the
// query. The query comes from the data field, falling back to the first
// positional value.
func (h *StarsHandler) Search(args command.Args) handler.Result {
	query := args.DataOr("")
	if query == "" && len(args.Values) > 0 {
		query = args.Values[0]
	}
	if query == "" {
		return handler.Errorf("search requires a query via -data or a positional value")
	}

	q := strings.ToLower(query)
	var matched []Star
	for _, s := range h.catalog {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Constellation), q) {
			matched = append(matched, s)
		}
	}

	matched = paginate(matched, args.PageOr(0), args.SkipOr(0))
	h.print(args, matched)
	return handler.OKWithValue(names(matched))
}

// print writes one line per star, with detail when verbose.
func (h *StarsHandler) print(args command.Args, stars []Star) {
	if args.Silent {
		return
	}
	for _, s := range stars {
		if args.IsVerbose() {
			fmt.Fprintf(h.out, "%s (%s, magnitude %.2f)\n", s.Name, s.Constellation, s.Magnitude)
		} else {
			fmt.Fprintln(h.out, s.Name)
		}
	}
}

// paginate applies skip, then selects the requested page. Negative page
// and skip values are treated as zero.
func paginate(stars []Star, page, skip int) []Star {
	if page < 0 {
		page = 0
	}
	if skip > 0 {
		if skip >= len(stars) {
			return nil
		}
		stars = stars[skip:]
	}

	start := page * defaultPageSize
	if start >= len(stars) {
		return nil
	}
	end := start + defaultPageSize
	if end > len(stars) {
		end = len(stars)
	}
	return stars[start:end]
}

// names extracts the star names, in catalog order.
func names(stars []Star) []string {
	out := make([]string, len(stars))
	for i, s := range stars {
		out[i] = s.Name
	}
	return out
}
