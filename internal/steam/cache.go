package steam

import "sync"

type cacheKey struct {
	p, arg float64
	mode   byte // 't' or 'x'
}

// Cache memoizes successful lookups keyed by the exact query tuple.
// Lookups are pure functions of their inputs, so entries never need
// invalidation. The map is unbounded on purpose: in practice the input
// space is the finite grid of slider steps the shell exposes.
type Cache struct {
	backend Properties

	mu     sync.Mutex
	states map[cacheKey]State
}

func NewCache(backend Properties) *Cache {
	return &Cache{backend: backend, states: make(map[cacheKey]State)}
}

func (c *Cache) AtPT(p, t float64) (State, error) {
	return c.lookup(cacheKey{p: p, arg: t, mode: 't'}, func() (State, error) {
		return c.backend.AtPT(p, t)
	})
}

func (c *Cache) AtPX(p, x float64) (State, error) {
	return c.lookup(cacheKey{p: p, arg: x, mode: 'x'}, func() (State, error) {
		return c.backend.AtPX(p, x)
	})
}

func (c *Cache) lookup(key cacheKey, miss func() (State, error)) (State, error) {
	c.mu.Lock()
	s, ok := c.states[key]
	c.mu.Unlock()
	if ok {
		return s, nil
	}
	s, err := miss()
	if err != nil {
		return State{}, err
	}
	c.mu.Lock()
	c.states[key] = s
	c.mu.Unlock()
	return s, nil
}
