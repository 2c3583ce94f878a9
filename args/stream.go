package args

import "slices"

// tokenStream is consumed from the front, and rewritten tokens are pushed back to the front.
type tokenStream struct {
	tokens []string
}

func newTokenStream(tokens []string) *tokenStream {
	return &tokenStream{tokens: slices.Clone(tokens)}
}

func (s *tokenStream) Len() int {
	return len(s.tokens)
}

// pop removes the head of the stream.
// False will be returned if the stream is empty.
func (s *tokenStream) pop() (string, bool) {
	if len(s.tokens) == 0 {
		return "", false
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok, true
}

func (s *tokenStream) peek() (string, bool) {
	if len(s.tokens) == 0 {
		return "", false
	}
	return s.tokens[0], true
}

// pushFront inserts tokens at the head of the stream, keeping their order.
func (s *tokenStream) pushFront(tokens ...string) {
	if len(tokens) == 0 {
		return
	}
	s.tokens = append(slices.Clone(tokens), s.tokens...)
}
