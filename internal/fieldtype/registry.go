package fieldtype

import "sync"

// ContributionFunc lets external code add or override field type
// entries. Contributions run in registration order over a copy of the
// built-in table; returning the map (possibly mutated) keeps the
// contract of the legacy contribution point.
type ContributionFunc func(types map[string]FieldType) map[string]FieldType

// Registry holds the merged field type table. The merge runs once and
// is reused until FlushCache is called; contribution changes after the
// first read have no effect until then. Lookup methods never fail
// beyond "unknown slug".
type Registry struct {
	mu            sync.RWMutex
	contributions []ContributionFunc
	table         map[string]FieldType
}

// NewRegistry creates a registry with the given contributions applied
// on top of the built-in type set.
func NewRegistry(contributions ...ContributionFunc) *Registry {
	return &Registry{contributions: contributions}
}

// GetAll returns the merged type table. The returned map is shared;
// callers must not mutate it.
func (r *Registry) GetAll() map[string]FieldType {
	r.mu.RLock()
	if r.table != nil {
		defer r.mu.RUnlock()
		return r.table
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.table == nil {
		table := builtinTypes()
		for _, contribute := range r.contributions {
			if contribute == nil {
				continue
			}
			if result := contribute(table); result != nil {
				table = result
			}
		}
		r.table = table
	}
	return r.table
}

// Get returns the field type for a slug, or false when unknown.
func (r *Registry) Get(slug string) (FieldType, bool) {
	t, ok := r.GetAll()[slug]
	return t, ok
}

// Supports reports whether the type behind the slug declares the
// capability. Unknown slugs report false.
func (r *Registry) Supports(slug string, cap Capability) bool {
	t, ok := r.Get(slug)
	return ok && t.HasCapability(cap)
}

// IsNumeric reports whether the type behind the slug carries the
// number datatype. Unknown slugs report false.
func (r *Registry) IsNumeric(slug string) bool {
	t, ok := r.Get(slug)
	return ok && t.Datatype == DatatypeNumber
}

// FlushCache clears the memoized table so the next read re-merges
// contributions. Used around tests and explicit reloads only.
func (r *Registry) FlushCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table = nil
}
