package sysprop

import "sync"

// Memory is an in-process Store. It records every successful Set so callers
// can assert on write-through behavior.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	sets   []SetCall
}

// SetCall is a recorded Memory.Set invocation.
type SetCall struct {
	Key   string
	Value string
}

var _ Store = &Memory{}

// NewMemory returns a Memory prefilled with values.
func NewMemory(values map[string]string) *Memory {
	m := &Memory{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Get returns the value of key.
func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok || v == "" {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	if err := checkValue(value); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	m.sets = append(m.sets, SetCall{Key: key, Value: value})
	return nil
}

// Put stores value without recording it as a Set call.
// Tests use it to change the environment between ticks.
func (m *Memory) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
}

// Delete removes key.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
}

// Sets returns the recorded Set calls in order.
func (m *Memory) Sets() []SetCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SetCall, len(m.sets))
	copy(out, m.sets)
	return out
}
