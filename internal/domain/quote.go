// Package domain contains core business entities and rules.
package domain

// Quote is one entry of the fortune corpus.
// This is a domain entity - it has no knowledge of how the corpus is stored.
type Quote struct {
	// ID is the 1-based position of the entry in its corpus.
	ID string

	// Content is the text of the quote.
	Content string

	// Author is who said or wrote the quote.
	Author string
}

// Attribution returns the credit line rendered under a fortune,
// or an empty string when the quote has no author.
func (q Quote) Attribution() string {
	if q.Author == "" {
		return ""
	}

	return "- " + q.Author
}

// Art is the ASCII art of a named character.
type Art struct {
	// Name is the character name the art was looked up by.
	Name string

	// Lines holds the art line by line, each with its original terminator.
	Lines []string
}
