// Package loader reads line-oriented dictionary text files and feeds every
// (word, translation) pair to an Adder.
//
// A data line holds the word, a TAB, then the translation field:
//
//	# header lines are skipped
//	book	livre[Noun]
//	bank	(river) rive, berge[Noun]
//	abode	of no fixed ~ :sans domicile fixe[Noun]
//	a	un(e): ~ book = un livre[Article]
//
// A parenthesized context right after the TAB is skipped. When a ':' comes
// before the first '~', the translation ends at the ':'. When a '~' comes
// first, the translation starts after the ':'. Otherwise it runs until one of
// "([,;".
package loader

import (
	"strings"
)

const translationDelims = "([,;\n"

// Entry is one parsed dictionary line.
type Entry struct {
	Word        string
	Translation string
}

// ParseLine extracts the entry from one line of the dictionary file.
// ok is false for header, blank and malformed lines.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" || line[0] == '#' {
		return Entry{}, false
	}

	posT := indexOrZero(line, '~')
	posD := indexOrZero(line, ':')

	context := false
	if tab := strings.IndexByte(line, '\t'); tab >= 0 && tab+1 < len(line) && line[tab+1] == '(' {
		context = true
	}

	tok := &tokenizer{s: line}
	word, ok := tok.next("\t")
	if !ok {
		return Entry{}, false
	}
	if context {
		tok.next("()")
	}

	var translation string
	switch {
	case posD < posT:
		translation, ok = tok.next(":")
	case posT < posD:
		tok.next(":")
		translation, ok = tok.next(translationDelims)
	default:
		translation, ok = tok.next(translationDelims)
	}
	if !ok {
		return Entry{}, false
	}

	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)
	if word == "" || translation == "" {
		return Entry{}, false
	}
	return Entry{Word: word, Translation: translation}, true
}

func indexOrZero(s string, c byte) int {
	if i := strings.IndexByte(s, c); i >= 0 {
		return i
	}
	return 0
}

// tokenizer splits like strtok: leading delimiters are skipped and the
// delimiter ending a token is consumed.
type tokenizer struct {
	s   string
	pos int
}

func (t *tokenizer) next(delims string) (string, bool) {
	for t.pos < len(t.s) && strings.IndexByte(delims, t.s[t.pos]) >= 0 {
		t.pos++
	}
	if t.pos >= len(t.s) {
		return "", false
	}
	start := t.pos
	end := strings.IndexAny(t.s[start:], delims)
	if end < 0 {
		t.pos = len(t.s)
		return t.s[start:], true
	}
	t.pos = start + end + 1
	return t.s[start : start+end], true
}
