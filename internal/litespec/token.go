package litespec

import "strings"

// tokens scans s and returns every @name(args) annotation substring in order.
// Arguments are captured with a depth counter so parentheses nested inside
// them survive (regex patterns, @ui and @if argument lists). A string without
// annotations yields an empty sequence.
func tokens(s string) []string {
	var toks []string

	for i := 0; i < len(s); i++ {
		if s[i] != '@' {
			continue
		}

		j := i + 1
		for j < len(s) && isIdentByte(s[j]) {
			j++
		}

		end := j
		if j < len(s) && s[j] == '(' {
			if _, after, ok := balanced(s, j); ok {
				end = after
			} else {
				end = len(s)
			}
		}

		toks = append(toks, s[i:end])
		i = end - 1
	}

	return toks
}

// balanced reads the parenthesized group starting at s[open] and returns its
// content plus the index just past the closing parenthesis.
func balanced(s string, open int) (string, int, bool) {
	depth := 0

	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}

		if depth == 0 {
			return s[open+1 : i], i + 1, true
		}
	}

	return "", 0, false
}

// splitToken breaks a raw @name(arg) token into its name and argument.
func splitToken(tok string) (name string, arg string, hasArg bool) {
	tok = strings.TrimPrefix(tok, "@")

	i := strings.IndexByte(tok, '(')
	if i == -1 {
		return tok, "", false
	}

	return tok[:i], strings.TrimSuffix(tok[i+1:], ")"), true
}

// indexTopLevel returns the index of the first c in s at parenthesis depth 0.
func indexTopLevel(s string, c byte) int {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case c:
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// annotationBody returns the balanced argument of the annotation the line
// starts with.
func annotationBody(line string, prefix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}

	body, _, ok := balanced(line, len(prefix)-1)
	return body, ok
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
