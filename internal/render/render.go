// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     render
// Description: Renders operation results as text, JSON or YAML
// Author:      Mike Stoffels
// Created:     2025-02-09
// License:     MIT
// ============================================================================

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	skerror "github.com/msto63/seqkit/foundation/core/error"
	"github.com/msto63/seqkit/internal/seqop"
	"github.com/msto63/seqkit/pkg/core/version"
)

// Options controls rendering
type Options struct {
	Format  Format
	Color   bool
	Verbose bool
}

// Renderer writes results in the configured format
type Renderer struct {
	opts   Options
	styles Styles
}

// New creates a renderer
func New(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	styles := PlainStyles()
	if opts.Color {
		styles = ColorStyles()
	}
	return &Renderer{opts: opts, styles: styles}
}

// Format returns the output format of the renderer
func (r *Renderer) Format() Format {
	return r.opts.Format
}

// document is the structured form of a result
type document struct {
	Operation string      `json:"operation" yaml:"operation"`
	Input     []string    `json:"input" yaml:"input"`
	Sub       []string    `json:"sub,omitempty" yaml:"sub,omitempty"`
	Result    interface{} `json:"result" yaml:"result"`
	Total     *int        `json:"total,omitempty" yaml:"total,omitempty"`
}

func newDocument(res *seqop.Result) document {
	doc := document{
		Operation: res.Operation,
		Input:     res.Input,
		Sub:       res.Sub,
		Result:    res.Value(),
	}
	if doc.Input == nil {
		doc.Input = []string{}
	}
	if res.Kind == seqop.KindSequences {
		total := len(res.Sequences)
		doc.Total = &total
	}
	return doc
}

// Render writes res to w
func (r *Renderer) Render(w io.Writer, res *seqop.Result) error {
	switch r.opts.Format {
	case FormatJSON:
		return encodeJSON(w, newDocument(res))
	case FormatYAML:
		return encodeYAML(w, newDocument(res))
	default:
		_, err := io.WriteString(w, r.text(res))
		return err
	}
}

// RenderString renders res into a string
func (r *Renderer) RenderString(res *seqop.Result) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, res); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderOperations writes the list of registered operations
func (r *Renderer) RenderOperations(w io.Writer, ops []seqop.Operation) error {
	switch r.opts.Format {
	case FormatJSON:
		return encodeJSON(w, ops)
	case FormatYAML:
		return encodeYAML(w, ops)
	}

	width := 0
	for _, op := range ops {
		width = max(width, len(op.Name))
	}

	var b strings.Builder
	for _, op := range ops {
		name := fmt.Sprintf("%-*s", width, op.Name)
		fmt.Fprintf(&b, "%s  %s %s\n",
			r.styles.Header.Render(name),
			op.Description,
			r.styles.Muted.Render("("+string(op.Kind)+")"))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderVersion writes build information
func (r *Renderer) RenderVersion(w io.Writer, info version.BuildInfo) error {
	switch r.opts.Format {
	case FormatJSON:
		return encodeJSON(w, info)
	case FormatYAML:
		return encodeYAML(w, info)
	}

	var b strings.Builder
	b.WriteString(r.styles.Header.Render("seqx "+info.Version) + "\n")
	r.field(&b, "commit", info.GitCommit)
	r.field(&b, "built", info.BuildDate)
	r.field(&b, "go", info.GoVersion)
	r.field(&b, "platform", info.Platform)
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) text(res *seqop.Result) string {
	var b strings.Builder

	b.WriteString(r.styles.Header.Render(res.Operation))
	b.WriteString(" " + r.styles.Muted.Render(elements(len(res.Input))) + "\n")
	r.field(&b, "input", r.sequence(res.Input))
	if res.Kind == seqop.KindMatch {
		r.field(&b, "sub", r.sequence(res.Sub))
	}

	switch res.Kind {
	case seqop.KindCount:
		r.field(&b, "result", r.styles.Value.Render(humanize.Comma(int64(res.Count))))
	case seqop.KindBool:
		r.field(&b, "result", r.yesNo(res.Bool))
	case seqop.KindElement:
		if res.Found {
			r.field(&b, "result", r.styles.Element.Render(res.Element))
		} else {
			r.field(&b, "result", r.styles.Muted.Render("none"))
		}
	case seqop.KindSequence:
		r.field(&b, "result", r.sequence(res.Sequence))
	case seqop.KindSequences:
		for _, s := range res.Sequences {
			b.WriteString("  " + r.sequence(s) + "\n")
		}
		b.WriteString(r.styles.Muted.Render(plural(len(res.Sequences), "sequence")) + "\n")
	case seqop.KindMatch:
		if res.Match.Contains {
			r.field(&b, "result", fmt.Sprintf("%s at index %d (%s element)",
				r.yesNo(true), res.Match.Index, humanize.Ordinal(res.Match.Index+1)))
		} else {
			r.field(&b, "result", r.yesNo(false))
		}
	case seqop.KindReport:
		if res.Analysis != nil {
			r.analysis(&b, res.Analysis)
		} else {
			r.occurrences(&b, res.Input, res.Occurrences)
		}
	}

	if r.opts.Verbose {
		r.field(&b, "elapsed", res.Elapsed.Round(time.Microsecond).String())
	}
	return b.String()
}

func (r *Renderer) analysis(b *strings.Builder, a *seqop.Analysis) {
	r.field(b, "length", r.styles.Value.Render(humanize.Comma(int64(a.Length))))
	r.field(b, "uniques", r.styles.Value.Render(humanize.Comma(int64(a.Uniques))))
	r.field(b, "duplicates", r.yesNo(a.HasDuplicates))
	r.field(b, "grouped", r.yesNo(a.Grouped))
	if a.FirstUnique != nil {
		r.field(b, "first unique", r.styles.Element.Render(*a.FirstUnique))
	} else {
		r.field(b, "first unique", r.styles.Muted.Render("none"))
	}
}

// occurrences lists counts in order of first appearance
func (r *Renderer) occurrences(b *strings.Builder, input []string, counts map[string]int) {
	seen := make(map[string]bool, len(counts))
	for _, e := range input {
		if seen[e] {
			continue
		}
		seen[e] = true
		b.WriteString(fmt.Sprintf("  %s %s\n",
			r.styles.Element.Render(e),
			r.styles.Value.Render("x"+humanize.Comma(int64(counts[e])))))
	}
}

func (r *Renderer) field(b *strings.Builder, label, value string) {
	b.WriteString(r.styles.Label.Render(label+":") + " " + value + "\n")
}

func (r *Renderer) sequence(s []string) string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = r.styles.Element.Render(e)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (r *Renderer) yesNo(v bool) string {
	if v {
		return r.styles.Yes.Render("yes")
	}
	return r.styles.No.Render("no")
}

func elements(n int) string {
	return "(" + plural(n, "element") + ")"
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return skerror.Wrap(err, "failed to encode JSON").
			WithCode(skerror.CodeInternal).
			WithOperation("render.encodeJSON")
	}
	return nil
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return skerror.Wrap(err, "failed to encode YAML").
			WithCode(skerror.CodeInternal).
			WithOperation("render.encodeYAML")
	}
	if err := enc.Close(); err != nil {
		return skerror.Wrap(err, "failed to encode YAML").
			WithCode(skerror.CodeInternal).
			WithOperation("render.encodeYAML")
	}
	return nil
}
