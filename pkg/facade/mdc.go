package facade

import (
	"context"
	"sort"
)

type mdcCtxKey struct{}

func mdc() MDCAdapter {
	ensureInitialized()
	return mdcAdapter
}

// WithContextMDC returns a child of ctx that carries its own context adapter,
// drawn fresh from the registered MDC binder and seeded with the entries of the
// scope ctx already carries. Writes to the child never reach the parent scope or
// the process-wide adapter.
//
//	ctx = facade.WithContextMDC(r.Context())
//	remove, _ := facade.PutCloseable(ctx, "request_id", id)
//	defer remove()
func WithContextMDC(ctx context.Context) context.Context {
	ensureInitialized()
	mu.Lock()
	b := scopeBinder
	mu.Unlock()

	var a MDCAdapter = nopMDCAdapter{}
	if b != nil {
		a = b.MDCAdapter()
	}
	if parent, ok := ctx.Value(mdcCtxKey{}).(MDCAdapter); ok {
		a.SetContextMap(parent.CopyOfContextMap())
	}
	return context.WithValue(ctx, mdcCtxKey{}, a)
}

// MDCFrom returns the adapter scoped to ctx, or the process-wide adapter when
// ctx carries none.
func MDCFrom(ctx context.Context) MDCAdapter {
	if ctx != nil {
		if a, ok := ctx.Value(mdcCtxKey{}).(MDCAdapter); ok {
			return a
		}
	}
	return mdc()
}

// Put stores val under key in the process-wide diagnostic context.
func Put(key, val string) error {
	if key == "" {
		return ErrEmptyKey
	}
	mdc().Put(key, val)
	return nil
}

// PutCloseable stores the pair in the adapter scoped to ctx and returns a func
// that removes it from that same adapter.
func PutCloseable(ctx context.Context, key, val string) (func(), error) {
	if key == "" {
		return func() {}, ErrEmptyKey
	}
	a := MDCFrom(ctx)
	a.Put(key, val)
	return func() { a.Remove(key) }, nil
}

func Get(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	return mdc().Get(key)
}

func Remove(key string) {
	if key == "" {
		return
	}
	mdc().Remove(key)
}

func Clear() {
	mdc().Clear()
}

func CopyOfContextMap() map[string]string {
	return mdc().CopyOfContextMap()
}

func SetContextMap(m map[string]string) {
	mdc().SetContextMap(m)
}

// WithMDC returns l enriched with the diagnostic context scoped to ctx, keys in
// sorted order.
func WithMDC(ctx context.Context, l Logger) Logger {
	entries := MDCFrom(ctx).CopyOfContextMap()
	if len(entries) == 0 {
		return l
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		kv = append(kv, k, entries[k])
	}
	return l.With(kv...)
}
