package parse

import "errors"

// State is the parser's cursor over the raw token array. The cursor starts
// before the first token; Advance moves it forward one token at a time.
// Every parse owns its own State, so a command tree can serve concurrent
// parses.
type State interface {
	Pos() int                      // current position, -1 before the first Advance
	SetPos(pos int)                // set the current position
	Skip()                         // consume the next token without inspecting it
	Args() []string                // the entire token array
	CurrentArg() string            // token at the current position
	ArgAt(pos int) (string, error) // token at a specific position
	Peek() (string, bool)          // next token without advancing; false when exhausted
	Advance() bool                 // move to the next token; false when exhausted
	Len() int                      // token count
}

// ErrInvalidPosition is returned by ArgAt for an out-of-range position.
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState is the default implementation of the State interface.
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a State over the given token array.
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the token array.
func (s *DefaultState) Pos() int {
	return s.pos
}

// SetPos sets the current position in the token array.
func (s *DefaultState) SetPos(pos int) {
	s.pos = pos
}

// Skip advances the current position without reading the token.
func (s *DefaultState) Skip() {
	s.pos++
}

// Args returns the entire token array.
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the token at the current position, or "" when the
// cursor is out of range.
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// ArgAt returns the token at a specific position.
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

// Peek returns the next token without advancing; the second return value is
// false when no tokens remain.
func (s *DefaultState) Peek() (string, bool) {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1], true
	}

	return "", false
}

// Advance moves to the next token, returning false when exhausted.
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}

// Len returns the length of the token array.
func (s *DefaultState) Len() int {
	return len(s.args)
}
