package parser

import (
	"strings"
	"unicode"
)

// ParsedCommand is one tokenized input line
type ParsedCommand struct {
	Command   string   // First token, lowercased; empty for blank input
	Arguments []string // Remaining tokens in order, case preserved
	RawInput  string   // Line exactly as read
}

// Empty reports whether the line held no command at all
func (c *ParsedCommand) Empty() bool {
	return c.Command == ""
}

// Arg returns the i-th argument or "" when absent
func (c *ParsedCommand) Arg(i int) string {
	if i < 0 || i >= len(c.Arguments) {
		return ""
	}
	return c.Arguments[i]
}

type tokenBuffer struct {
	builder strings.Builder
}

func (b *tokenBuffer) isEmpty() bool {
	return b.builder.Len() == 0
}

func (b *tokenBuffer) appendRune(r rune) {
	b.builder.WriteRune(r)
}

func (b *tokenBuffer) flushIfNotEmpty(tokens []string) []string {
	if !b.isEmpty() {
		tokens = append(tokens, b.builder.String())
		b.builder.Reset()
	}
	return tokens
}

// Tokenize splits line on whitespace, keeping double-quoted runs together.
//
// A quote toggles quoting; inside quotes every character is literal. The
// closing quote ends the token even when more non-space text follows, and an
// empty pair of quotes yields nothing. An unterminated quote is forgiven: the
// buffered text becomes the last token. There are no escapes and no single
// quotes.
func Tokenize(line string) []string {
	tokens := []string{}
	trimmed := strings.TrimFunc(line, unicode.IsSpace)
	if trimmed == "" {
		return tokens
	}

	var buf tokenBuffer
	inQuotes := false
	for _, ch := range trimmed {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			if !inQuotes {
				tokens = buf.flushIfNotEmpty(tokens)
			}
		case inQuotes:
			buf.appendRune(ch)
		case unicode.IsSpace(ch):
			tokens = buf.flushIfNotEmpty(tokens)
		default:
			buf.appendRune(ch)
		}
	}

	return buf.flushIfNotEmpty(tokens)
}

// Parse tokenizes line into a [ParsedCommand]. Only the command name is
// case-folded. Parse never fails.
func Parse(line string) *ParsedCommand {
	parsed := &ParsedCommand{RawInput: line, Arguments: []string{}}

	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return parsed
	}

	parsed.Command = strings.ToLower(tokens[0])
	parsed.Arguments = append(parsed.Arguments, tokens[1:]...)
	return parsed
}
