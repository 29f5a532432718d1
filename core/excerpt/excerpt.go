// Package excerpt builds word-bounded preview text for post listings.
// A whitespace tokenizer is used: words are runs of non-space characters.
package excerpt

import "strings"

// DefaultWords is the preview length used when none is configured.
const DefaultWords = 40

// Ellipsis marks a truncated excerpt.
const Ellipsis = "…"

// Excerpter cuts text to a fixed number of words.
type Excerpter struct {
	Words int // words per excerpt
}

// New creates an Excerpter with the given size.
// Defaults to DefaultWords if words <= 0.
func New(words int) *Excerpter {
	if words <= 0 {
		words = DefaultWords
	}
	return &Excerpter{Words: words}
}

// Excerpt returns the first Words words of text joined by single spaces,
// followed by Ellipsis when text was longer.
func (e *Excerpter) Excerpt(text string) string {
	chunks := e.Split(text)
	switch len(chunks) {
	case 0:
		return ""
	case 1:
		return chunks[0]
	}
	return chunks[0] + Ellipsis
}

// Split cuts text into consecutive chunks of at most Words words.
// Each chunk is its words joined by single spaces; blank text yields nil.
func (e *Excerpter) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	size := e.Words
	if size <= 0 {
		size = DefaultWords
	}

	var chunks []string
	for i := 0; i < len(words); i += size {
		end := min(i+size, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}
