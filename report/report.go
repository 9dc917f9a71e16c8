// SPDX-License-Identifier: MIT

// Package report renders query results for people and programs: plain text,
// lipgloss-styled text on terminals, or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/bacon/bfs"
	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/core"
)

// Separator closes a printed path, above the Bacon number line.
const Separator = "----------------------------------------"

// Option configures a Printer.
type Option func(*Printer)

// WithJSON switches output to indented JSON documents.
func WithJSON(on bool) Option {
	return func(p *Printer) { p.json = on }
}

// WithColor forces styling on or off, overriding terminal detection.
func WithColor(on bool) Option {
	return func(p *Printer) { p.color = on }
}

// WithStyles replaces the terminal styles.
func WithStyles(s *Styles) Option {
	if s == nil {
		panic("report: WithStyles(nil)")
	}
	return func(p *Printer) { p.styles = s }
}

// Printer writes reports to one writer.
type Printer struct {
	w      io.Writer
	json   bool
	color  bool
	styles *Styles
}

// New returns a Printer on w. Styling is enabled when w is a terminal.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, styles: DefaultStyles()}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		p.color = true
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Printer) paint(st lipgloss.Style, s string) string {
	if !p.color || p.json {
		return s
	}
	return st.Render(s)
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	return nil
}

// lines writes ls, one per line.
func (p *Printer) lines(ls ...string) error {
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())
	if err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}

// Path prints a query result. The text form walks from the target back to the
// source, one "X was in M with Y." line per hop:
//
//	Kevin Bacon was in Apollo 13 with Tom Hanks.
//	----------------------------------------
//	Kevin Bacon's Bacon number is 1
func (p *Printer) Path(res *bfs.Result) error {
	if p.json {
		return p.encode(res)
	}
	if !res.Found {
		return p.lines(fmt.Sprintf("%s between %s and %s.", p.paint(p.styles.Missing, "No connection"),
			p.paint(p.styles.Actor, res.Source), p.paint(p.styles.Actor, res.Target)))
	}

	out := make([]string, 0, len(res.Path)+2)
	for i := len(res.Path) - 1; i >= 0; i-- {
		h := res.Path[i]
		out = append(out, fmt.Sprintf("%s was in %s with %s.",
			p.paint(p.styles.Actor, h.To), p.paint(p.styles.Movie, h.Movie), p.paint(p.styles.Actor, h.From)))
	}
	out = append(out,
		p.paint(p.styles.Dim, Separator),
		fmt.Sprintf("%s's Bacon number is %s", res.Target, p.paint(p.styles.Number, strconv.Itoa(res.Hops))),
	)

	return p.lines(out...)
}

// distanceDoc is the JSON form of Distances.
type distanceDoc struct {
	Center  string        `json:"center"`
	Results []*bfs.Result `json:"results"`
}

// Distances prints one Bacon number per result, relative to center.
func (p *Printer) Distances(center string, results []*bfs.Result) error {
	if p.json {
		return p.encode(distanceDoc{Center: center, Results: results})
	}

	out := []string{"Bacon numbers relative to " + p.paint(p.styles.Actor, center) + ":"}
	for _, r := range results {
		n := p.paint(p.styles.Missing, "no connection")
		if r.Found {
			n = p.paint(p.styles.Number, strconv.Itoa(r.Hops))
		}
		out = append(out, fmt.Sprintf("  %s: %s", r.Target, n))
	}

	return p.lines(out...)
}

// statsDoc is the JSON form of Stats.
type statsDoc struct {
	Graph  core.GraphStats     `json:"graph"`
	Ingest builder.IngestStats `json:"ingest"`
}

// Stats prints graph and ingest counters.
func (p *Printer) Stats(g core.GraphStats, in builder.IngestStats) error {
	if p.json {
		return p.encode(statsDoc{Graph: g, Ingest: in})
	}

	row := func(label string, v int) string {
		return fmt.Sprintf("%s %d", p.paint(p.styles.Label, fmt.Sprintf("%-18s", label+":")), v)
	}
	return p.lines(
		row("Records", in.Records),
		row("Malformed", in.Malformed),
		row("Duplicates", in.Duplicates),
		row("Total Actors", g.Actors),
		row("Total Movies", g.Movies),
		row("Credits", g.Credits),
		row("Directed edges", g.Edges),
		row("Isolated actors", g.Isolated),
		row("Max co-stars", g.MaxDegree),
	)
}

// castDoc is the JSON form of Cast.
type castDoc struct {
	Movie  string   `json:"movie"`
	Actors []string `json:"actors"`
}

// Cast prints a movie's cast in the build-time listing format.
func (p *Printer) Cast(movie string, actors []string) error {
	if p.json {
		return p.encode(castDoc{Movie: movie, Actors: actors})
	}

	out := make([]string, 0, len(actors)+3)
	out = append(out, "Movie: "+p.paint(p.styles.Movie, movie))
	for _, a := range actors {
		out = append(out, "  "+a)
	}
	out = append(out, fmt.Sprintf("Total Actors: %d", len(actors)), p.paint(p.styles.Dim, "----------------------"))

	return p.lines(out...)
}

// neighborDoc is the JSON form of Neighbors.
type neighborDoc struct {
	Actor     string          `json:"actor"`
	Neighbors []core.Neighbor `json:"neighbors"`
}

// Neighbors prints an actor's co-stars with the retained movie of each link.
func (p *Printer) Neighbors(actor string, nb []core.Neighbor) error {
	if p.json {
		return p.encode(neighborDoc{Actor: actor, Neighbors: nb})
	}

	out := make([]string, 0, len(nb)+1)
	out = append(out, fmt.Sprintf("%s has %d co-stars:", p.paint(p.styles.Actor, actor), len(nb)))
	for _, n := range nb {
		out = append(out, fmt.Sprintf("  %s (%s)", n.Name, p.paint(p.styles.Movie, n.Movie)))
	}

	return p.lines(out...)
}
