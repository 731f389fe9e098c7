// Package transcriber rewrites ".bsx" slang source into canonical
// Bussin source before lexing. It is a pure text-to-text pass — no
// tokens, no AST — matching spec.md §6.1 and the original's
// src/utils/transcriber.rs.
package transcriber

import "regexp"

// replacement is one ordered slang→canonical rewrite.
type replacement struct {
	from string
	to   string
}

// replacements is applied in this exact order. The ";"→"!" entry is a
// no-op in practice: word-boundary matching only fires on
// alphanumeric-or-underscore runs, and ";" is neither, so it never
// matches anything. It stays first in the list only because spec.md
// §6.1 lists it first; the later "rn"→";" rewrite is what actually
// produces statement terminators.
var replacements = []replacement{
	{";", "!"},
	{"rn", ";"},
	{"be", "="},
	{"lit", "let"},
	{"mf", "const"},
	{"waffle", "println"},
	{"sus", "if"},
	{"fake", "null"},
	{"impostor", "else"},
	{"nah", "!="},
	{"fr", "=="},
	{"btw", "&&"},
	{"carenot", "|"},
	{"bruh", "fn"},
	{"nerd", "math"},
	{"yall", "for"},
	{"smol", "<"},
	{"thicc", ">"},
	{"nocap", "true"},
	{"cap", "false"},
	{"fuck_around", "try"},
	{"find_out", "catch"},
	{"clapback", "exec"},
	{"yap", "input"},
}

// typeAnnotations are stripped after the slang replacements run.
var typeAnnotations = regexp.MustCompile(`: number|: string|: object|: boolean`)

// wordBoundaryPattern matches word only as a whole ASCII-alphanumeric-
// or-underscore run, so replacements only fire at identifier boundaries
// and never inside a larger word. An entry that is not itself such a run
// (";") gets a pattern that matches nothing.
func wordBoundaryPattern(word string) *regexp.Regexp {
	if !regexp.MustCompile(`^\w+$`).MatchString(word) {
		return regexp.MustCompile(`[^\x00-\x{10FFFF}]`)
	}
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}

var boundaryPatterns = buildBoundaryPatterns()

func buildBoundaryPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(replacements))
	for _, r := range replacements {
		patterns[r.from] = wordBoundaryPattern(r.from)
	}
	return patterns
}

// Transcribe applies every replacement in order, then strips the
// type-annotation suffixes, and returns the rewritten source. Every
// entry, including ";"→"!", goes through the same word-boundary
// matcher — ";" never matches a word boundary, so that entry is
// inert, which is what keeps transcribing already-canonical source a
// no-op (spec.md §8).
func Transcribe(src string) string {
	result := src
	for _, r := range replacements {
		result = boundaryPatterns[r.from].ReplaceAllString(result, r.to)
	}
	result = typeAnnotations.ReplaceAllString(result, "")
	return result
}
