package args

import "strings"

// token is one classified argument, after any rewrite rules have been applied.
type token struct {
	raw       string
	text      string
	inline    string
	hasInline bool
}

func (t token) switchLike() bool {
	return isSwitchLike(t.text)
}

func isSwitchLike(s string) bool {
	return strings.HasPrefix(s, "-")
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func allWordChars(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return false
		}
	}
	return true
}

// rewriteRule transforms a switch-like token that doesn't exactly match a declared switch.
// Rules may push tokens back to the front of the stream for later processing.
type rewriteRule struct {
	name  string
	apply func(tok *token, stream *tokenStream) bool
}

// rewriteRules are evaluated in order, and each rule sees the output of the rules before it.
var rewriteRules = []rewriteRule{
	{name: "bundled-with-value", apply: bundledWithValue},
	{name: "bundled-short", apply: bundledShort},
	{name: "inline-value", apply: inlineValue},
}

// bundledWithValue handles '-qVo=value' (or '-qVo value' in a single token).
// The last switch and its value are pushed back as '-o=value', and the token is left as '-qV'.
func bundledWithValue(tok *token, stream *tokenStream) bool {
	s := tok.text
	if !strings.HasPrefix(s, "-") {
		return false
	}
	sep := strings.IndexAny(s, "= ")
	if sep < 0 || sep == len(s)-1 {
		return false
	}
	bundle := s[1:sep]
	if len(bundle) < 2 || !allWordChars(bundle) {
		return false
	}
	last := bundle[len(bundle)-1:]
	stream.pushFront("-" + last + "=" + s[sep+1:])
	tok.text = s[:sep-1]
	return true
}

// bundledShort handles '-qVa', which becomes '-q' with '-V' and '-a' pushed back to the stream.
func bundledShort(tok *token, stream *tokenStream) bool {
	s := tok.text
	if !strings.HasPrefix(s, "-") || !allWordChars(s[1:]) {
		return false
	}
	rest := make([]string, 0, len(s)-2)
	for i := 2; i < len(s); i++ {
		rest = append(rest, "-"+s[i:i+1])
	}
	stream.pushFront(rest...)
	tok.text = s[:2]
	return true
}

// inlineValue handles '--name=value' and '-n=value'.
// The name may contain inner dashes, and the value is everything after the first '='.
func inlineValue(tok *token, _ *tokenStream) bool {
	s := tok.text
	prefix := "-"
	if strings.HasPrefix(s, "--") {
		prefix = "--"
	} else if !strings.HasPrefix(s, "-") {
		return false
	}
	name, val, found := strings.Cut(s[len(prefix):], "=")
	if !found || len(val) == 0 || !validInlineName(name) {
		return false
	}
	tok.text = prefix + name
	tok.inline = val
	tok.hasInline = true
	return true
}

func validInlineName(name string) bool {
	if len(name) == 0 || !isWordChar(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isWordChar(name[i]) && name[i] != '-' {
			return false
		}
	}
	return true
}

// nextToken pops and classifies the next token from the stream.
// Switch-like tokens that don't match a declared switch are run through the rewrite rules.
func (p *Parser) nextToken(stream *tokenStream) (token, bool) {
	raw, ok := stream.pop()
	if !ok {
		return token{}, false
	}
	tok := token{raw: raw, text: raw}
	if !tok.switchLike() {
		return tok, true
	}
	if _, ok := p.byToken[tok.text]; ok {
		return tok, true
	}
	for _, rule := range rewriteRules {
		before := tok.text
		if rule.apply(&tok, stream) {
			p.logger.Debug("Rewrote switch token", "rule", rule.name, "from", before, "to", tok.text, "pending", stream.Len())
		}
	}
	return tok, true
}
