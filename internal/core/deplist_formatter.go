package core

import (
	"context"
	"strings"
	"unicode/utf8"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"xbps-tmpl/internal/types"
)

const (
	continuationIndent = " "
	macroOpen          = "$(vopt_if"
	macroClose         = ")"
	legacyMacroClose   = ">"
	// macroJoiner keeps the macro call a single word while wrapping.
	macroJoiner = "/"
)

var macroSeparators = strings.NewReplacer("/", " ", "|", " ")

// DepListFormatter renders a whitespace separated package list as a
// wrapped field="..." assignment.
type DepListFormatter struct {
	Options types.FormatOptions
}

type depWord struct {
	text  string
	macro bool
}

func NewDepListFormatter(opts types.FormatOptions) DepListFormatter {
	if opts.Width <= 0 {
		opts.Width = types.DefaultWrapWidth
	}
	if opts.Marker == "" {
		opts.Marker = types.DefaultMarker
	}
	return DepListFormatter{Options: opts}
}

func (f DepListFormatter) Format(ctx context.Context, pkgs string, field types.DepField) string {
	assert.NotEmpty(ctx, string(field), "dependency field must be set")

	words := f.collectWords(pkgs)
	prefix := string(field) + `="`
	if len(words) == 0 {
		return prefix + `"`
	}
	words[0].text = prefix + words[0].text
	words[len(words)-1].text += `"`

	lines := wrapWords(words, f.Options.Width)
	rendered := make([]string, 0, len(lines))
	for i, line := range lines {
		parts := make([]string, 0, len(line))
		for _, word := range line {
			text := word.text
			if word.macro {
				text = macroSeparators.Replace(text)
			}
			parts = append(parts, text)
		}
		joined := strings.Join(parts, " ")
		if i > 0 {
			joined = continuationIndent + joined
		}
		rendered = append(rendered, joined)
	}
	log.Ctx(ctx).Debug().
		Str("field", string(field)).
		Int("words", len(words)).
		Int("lines", len(rendered)).
		Msg("dependency list formatted")
	return strings.Join(rendered, "\n")
}

// collectWords returns plain packages first and conditional macro calls
// after them, each group in input order.
func (f DepListFormatter) collectWords(pkgs string) []depWord {
	var plain, macros []depWord
	for _, token := range strings.Fields(pkgs) {
		if !strings.HasPrefix(token, f.Options.Marker) {
			plain = append(plain, depWord{text: token})
			continue
		}
		macros = append(macros, depWord{text: f.macroCall(token), macro: true})
	}
	return append(plain, macros...)
}

func (f DepListFormatter) macroCall(token string) string {
	rest := strings.TrimPrefix(token, f.Options.Marker)
	rest = strings.TrimSuffix(rest, legacyMacroClose)
	return macroOpen + macroJoiner + rest + macroClose
}

// wrapWords fills lines greedily. Continuation lines carry a one column
// indent that counts against width. A word wider than the line is placed on
// its own line rather than broken.
func wrapWords(words []depWord, width int) [][]depWord {
	var lines [][]depWord
	var current []depWord
	currentLen := 0
	for _, word := range words {
		wordLen := utf8.RuneCountInString(word.text)
		if len(current) == 0 {
			current = []depWord{word}
			currentLen = wordLen
			continue
		}
		indent := 0
		if len(lines) > 0 {
			indent = utf8.RuneCountInString(continuationIndent)
		}
		if indent+currentLen+1+wordLen <= width {
			current = append(current, word)
			currentLen += 1 + wordLen
			continue
		}
		lines = append(lines, current)
		current = []depWord{word}
		currentLen = wordLen
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
