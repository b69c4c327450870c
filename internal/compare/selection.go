// Package compare tracks per-visitor comparison selections: small ordered
// sets of model ids with most-recently-toggled eviction.
package compare

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Capacity is the maximum number of models in one comparison selection.
const Capacity = 4

// Selection is an ordered, deduplicated set of model ids, capped at Capacity.
// The zero value is ready to use. Not safe for concurrent use; the Registry
// serializes access.
type Selection struct {
	ids []string
}

// Toggle removes id if present, else appends it. When the append exceeds
// Capacity the oldest entry is evicted so the newest Capacity remain.
func (s *Selection) Toggle(id string) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
	if len(s.ids) > Capacity {
		s.ids = s.ids[len(s.ids)-Capacity:]
	}
}

// IDs returns the selected ids in add order, oldest first.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected ids.
func (s *Selection) Len() int { return len(s.ids) }

// Active reports whether the comparison view should be shown. A single
// selection compares nothing, so the threshold is two.
func (s *Selection) Active() bool { return len(s.ids) >= 2 }

// Registry maps visitor session tokens to their selections. Selections live
// for the process lifetime, mirroring the tab-scoped state of the original
// site. Safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Selection
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Selection)}
}

// NewToken mints a fresh session token: 16 random bytes, hex encoded.
func (r *Registry) NewToken() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// Toggle flips id in the session's selection and returns the resulting ids.
func (r *Registry) Toggle(token, id string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	sel := r.sessions[token]
	if sel == nil {
		sel = &Selection{}
		r.sessions[token] = sel
	}
	sel.Toggle(id)
	return sel.IDs()
}

// IDs returns the session's selected ids, oldest first. Unknown tokens have
// an empty selection.
func (r *Registry) IDs(token string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sel := r.sessions[token]; sel != nil {
		return sel.IDs()
	}
	return nil
}
