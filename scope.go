package cmdkit

import "fmt"

// Index namespaces. A flag is reachable under its primary name and under
// its long/short aliases; all three namespaces share one table.
const (
	nsFlag  = "flag:"
	nsLong  = "long:"
	nsShort = "short:"
)

// FlagScope is the set of flags visible to one command node: a local
// registry plus a borrowed reference to the owning parent command's scope.
// Lookups walk the parent chain, so a node sees everything its ancestors
// registered. Nothing is ever copied downwards - a local entry under the
// same key merely shadows the parent's entry for that key.
type FlagScope struct {
	parent *FlagScope
	flags  []*Flag
	index  map[string]*Flag
}

// NewFlagScope creates a scope chained to parent, which may be nil for the
// root scope.
func NewFlagScope(parent *FlagScope) *FlagScope {
	return &FlagScope{
		parent: parent,
		index:  map[string]*Flag{},
	}
}

// Register adds f to this scope, indexing it under its primary name and
// under its long and short aliases when present. Registering a key already
// taken locally is an error; re-using a key held by an ancestor scope is
// shadowing and is allowed.
func (s *FlagScope) Register(f *Flag) error {
	if f == nil {
		return fmt.Errorf(FmtErrorWithString, ErrDuplicateFlag, "nil flag")
	}

	keys := []string{nsFlag + f.Name()}
	if f.Long() != "" {
		keys = append(keys, nsLong+f.Long())
	}
	if f.Short() != "" {
		keys = append(keys, nsShort+f.Short())
	}
	for _, key := range keys {
		if _, taken := s.index[key]; taken {
			return fmt.Errorf(FmtErrorWithString, ErrDuplicateFlag, key)
		}
	}

	s.flags = append(s.flags, f)
	for _, key := range keys {
		s.index[key] = f
	}

	return nil
}

// RegisterLongAlias indexes an already-registered flag under an additional
// long key.
func (s *FlagScope) RegisterLongAlias(f *Flag, alias string) error {
	return s.registerAlias(f, nsLong+DefaultNameConverter(alias))
}

// RegisterShortAlias indexes an already-registered flag under an additional
// short key.
func (s *FlagScope) RegisterShortAlias(f *Flag, alias string) error {
	return s.registerAlias(f, nsShort+DefaultNameConverter(alias))
}

func (s *FlagScope) registerAlias(f *Flag, key string) error {
	if s.index[nsFlag+f.Name()] != f {
		return fmt.Errorf(FmtErrorWithString, ErrUnknownFlag, f.Name())
	}
	if _, taken := s.index[key]; taken {
		return fmt.Errorf(FmtErrorWithString, ErrDuplicateFlag, key)
	}
	s.index[key] = f

	return nil
}

// Lookup resolves a flag by primary name, walking the parent chain.
func (s *FlagScope) Lookup(name string) *Flag {
	return s.lookup(nsFlag + DefaultNameConverter(name))
}

// LookupLong resolves a flag by long alias, walking the parent chain. At
// each level the primary name doubles as a long key, so a flag without an
// explicit long alias is still addressable as --name.
func (s *FlagScope) LookupLong(name string) *Flag {
	key := DefaultNameConverter(name)
	for scope := s; scope != nil; scope = scope.parent {
		if f, ok := scope.index[nsLong+key]; ok {
			return f
		}
		if f, ok := scope.index[nsFlag+key]; ok {
			return f
		}
	}

	return nil
}

// LookupShort resolves a flag by short alias, walking the parent chain.
func (s *FlagScope) LookupShort(name string) *Flag {
	return s.lookup(nsShort + DefaultNameConverter(name))
}

func (s *FlagScope) lookup(key string) *Flag {
	for scope := s; scope != nil; scope = scope.parent {
		if f, ok := scope.index[key]; ok {
			return f
		}
	}

	return nil
}

// Parent returns the chained parent scope, nil at the root.
func (s *FlagScope) Parent() *FlagScope {
	return s.parent
}

// Flags returns the locally registered flags in registration order.
func (s *FlagScope) Flags() []*Flag {
	flags := make([]*Flag, len(s.flags))
	copy(flags, s.flags)

	return flags
}

// VisibleFlags returns every flag visible from this scope, nearest scope
// first, de-duplicated by primary name. A shadowed ancestor flag is not
// reachable under its name and is therefore not listed. Used by the help
// renderer.
func (s *FlagScope) VisibleFlags() []*Flag {
	var visible []*Flag
	seen := map[string]struct{}{}
	for scope := s; scope != nil; scope = scope.parent {
		for _, f := range scope.flags {
			if _, ok := seen[f.Name()]; ok {
				continue
			}
			seen[f.Name()] = struct{}{}
			visible = append(visible, f)
		}
	}

	return visible
}
