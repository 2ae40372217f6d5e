package themecheck

import "sync"

// catalogue is the single global list of built-in checks.
var catalogue = &registry{}

type registry struct {
	mu     sync.RWMutex
	checks []Check // registration order
}

// Register adds a check to the built-in catalogue.
// Call this from init() functions in check packages.
func Register(c Check) {
	catalogue.mu.Lock()
	defer catalogue.mu.Unlock()
	catalogue.checks = append(catalogue.checks, c)
}

// Builtins returns the registered built-in checks in registration order.
func Builtins() []Check {
	catalogue.mu.RLock()
	defer catalogue.mu.RUnlock()
	return append([]Check(nil), catalogue.checks...)
}

// Lookup returns a built-in check by category.
func Lookup(category string) (Check, bool) {
	catalogue.mu.RLock()
	defer catalogue.mu.RUnlock()
	for _, c := range catalogue.checks {
		if c.Category() == category {
			return c, true
		}
	}
	return nil, false
}
