package provider

import "sync"

// Keyring hands out API keys in round-robin order. The cursor is guarded by a
// mutex so concurrent requests to the same vendor neither skip nor double-issue
// a key. Rotation is blind: a failing key comes back around every len(keys)
// requests regardless of past outcomes.
type Keyring struct {
	mu   sync.Mutex
	keys []string
	next int
}

// NewKeyring creates a keyring over the given keys. The slice order is the
// rotation order and never changes after construction.
func NewKeyring(keys []string) *Keyring {
	return &Keyring{keys: keys}
}

// Next returns the next key in rotation. ok is false when the ring is empty.
func (k *Keyring) Next() (key string, ok bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.keys) == 0 {
		return "", false
	}
	key = k.keys[k.next]
	k.next = (k.next + 1) % len(k.keys)
	return key, true
}

// Len returns the number of keys in the ring.
func (k *Keyring) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.keys)
}
