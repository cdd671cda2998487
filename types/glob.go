package types

import (
	"regexp"
	"strings"
)

type globValidator struct{}

func (globValidator) Name() string        { return "glob" }
func (globValidator) Description() string { return "a glob pattern (* and ? wildcards)" }

func (globValidator) IsValid(raw string) bool {
	_, err := regexp.Compile(translateGlob(raw))

	return err == nil
}

// Coerce compiles the glob to an anchored *regexp.Regexp.
func (globValidator) Coerce(raw string) any {
	return regexp.MustCompile(translateGlob(raw))
}

// translateGlob rewrites a glob pattern as an anchored regular expression:
// '*' matches any run of characters, '?' exactly one, everything else is
// taken literally.
func translateGlob(pattern string) string {
	var sb strings.Builder
	sb.WriteByte('^')
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteByte('.')
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteByte('$')

	return sb.String()
}
