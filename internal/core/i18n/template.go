package i18n

import "strings"

// token is a literal run or a {name} placeholder of a message template.
type token struct {
	text        string
	placeholder bool
}

// parse splits a message into literal text and {name} placeholders. A brace
// that does not enclose a valid name is kept as literal text.
func parse(message string) []token {
	var (
		tokens  []token
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, token{text: literal.String()})
			literal.Reset()
		}
	}

	rest := message
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			literal.WriteString(rest)
			break
		}
		literal.WriteString(rest[:open])
		rest = rest[open:]

		end := strings.IndexByte(rest, '}')
		if end < 0 || !validName(rest[1:end]) {
			literal.WriteByte('{')
			rest = rest[1:]
			continue
		}

		flush()
		tokens = append(tokens, token{text: rest[1:end], placeholder: true})
		rest = rest[end+1:]
	}
	flush()
	return tokens
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
