// Package storage provides token holders and the in-memory token store.
package storage

import (
	"sync"

	"github.com/yndnr/authkit-go/pkg/authtoken"
)

// Holder is the current-token slot for one request or session scope.
//
// The holder itself is safe for concurrent use; the token it holds is
// not, so the usual pattern is one holder per request.
type Holder struct {
	mu  sync.RWMutex
	tok *authtoken.Token
}

// NewHolder creates an empty holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Get returns the held token, or nil when empty.
func (h *Holder) Get() *authtoken.Token {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tok
}

// Set replaces the held token. A nil token clears the slot.
func (h *Holder) Set(tok *authtoken.Token) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tok = tok
}

// Clear empties the slot.
func (h *Holder) Clear() {
	h.Set(nil)
}
