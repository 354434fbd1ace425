package zapbackend

import (
	"sync"

	"git.famapp.in/fampay-inc/logbind/pkg/facade"
)

// MDCAdapter is a mutex-guarded context map. Instances share nothing.
type MDCAdapter struct {
	mu sync.RWMutex
	m  map[string]string
}

var _ facade.MDCAdapter = (*MDCAdapter)(nil)

func NewMDCAdapter() *MDCAdapter {
	return &MDCAdapter{m: make(map[string]string)}
}

func (a *MDCAdapter) Put(key, val string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.m[key] = val
}

func (a *MDCAdapter) Get(key string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.m[key]
	return v, ok
}

func (a *MDCAdapter) Remove(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.m, key)
}

func (a *MDCAdapter) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.m = make(map[string]string)
}

func (a *MDCAdapter) CopyOfContextMap() map[string]string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if len(a.m) == 0 {
		return nil
	}
	out := make(map[string]string, len(a.m))
	for k, v := range a.m {
		out[k] = v
	}
	return out
}

func (a *MDCAdapter) SetContextMap(m map[string]string) {
	next := make(map[string]string, len(m))
	for k, v := range m {
		next[k] = v
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.m = next
}
