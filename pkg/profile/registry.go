package profile

import "fmt"

// Registry is a read-only catalog of mobility profiles. It has no mutation
// API after construction, so lookups are safe from any number of goroutines.
type Registry struct {
	byID  map[string]Profile
	order []string
}

// NewRegistry validates and registers the given profiles. Registration order
// is preserved for List. Duplicate or invalid definitions fail with
// ErrInvalidProfile.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{byID: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidProfile, p.ID)
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r, nil
}

// Get returns the profile registered under id, or ErrUnknownProfile.
func (r *Registry) Get(id string) (Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, id)
	}
	return p, nil
}

// List returns all profiles in registration order.
func (r *Registry) List() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int { return len(r.order) }
