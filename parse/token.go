package parse

import "strings"

// FlagToken is the decomposed form of a raw flag-syntax token.
type FlagToken struct {
	Name  string  // name without prefix, original casing
	Long  bool    // true for the -- form
	Value *string // inline value, nil when none was supplied
}

// IsFlag reports whether tok follows the flag token grammar: a '-' prefix
// followed by at least one name character. Tokens shorter than two
// characters are never flags.
func IsFlag(tok string) bool {
	return len(tok) >= 2 && tok[0] == '-' && tok != "--"
}

// SplitFlag parses tok into its name, form and optional inline value. The
// supported forms are --name, --name=value, -n, -nVALUE and -n=value. The
// second return value is false when tok does not follow the grammar.
func SplitFlag(tok string) (FlagToken, bool) {
	if !IsFlag(tok) {
		return FlagToken{}, false
	}

	if strings.HasPrefix(tok, "--") {
		name, val, found := strings.Cut(tok[2:], "=")
		if name == "" {
			return FlagToken{}, false
		}
		ft := FlagToken{Name: name, Long: true}
		if found {
			ft.Value = &val
		}

		return ft, true
	}

	// short form: single-character name, value appended directly or after '='
	ft := FlagToken{Name: tok[1:2]}
	rest := tok[2:]
	switch {
	case rest == "":
	case rest[0] == '=':
		val := rest[1:]
		ft.Value = &val
	default:
		ft.Value = &rest
	}

	return ft, true
}
