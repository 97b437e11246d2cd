// Package seeders provides a registry of database seed functions.
//
// Seeders register against the pool they write to:
//
//	func init() {
//	    seeders.Register("products", seeders.PoolPublic, SeedProducts)
//	}
//
//	func SeedProducts(db *gorm.DB) error {
//	    // insert rows …
//	    return nil
//	}
//
// Then run via CLI: tienda seed
package seeders

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
)

const (
	PoolPublic  = "public"
	PoolPrivate = "private"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(db *gorm.DB) error

type seederEntry struct {
	name string
	pool string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name, pool string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, pool: pool, fn: fn})
}

// RunAll executes every seeder registered for pool, in registration
// order, against db. It stops on the first error.
func RunAll(db *gorm.DB, pool string) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	ran := 0
	for _, e := range current {
		if e.pool != pool {
			continue
		}
		ran++
		fmt.Printf("  • Running seeder: %s … ", e.name)
		if err := e.fn(db); err != nil {
			fmt.Println("FAILED")
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		fmt.Println("done")
	}

	if ran == 0 {
		fmt.Printf("  (no seeders registered for %s pool)\n", pool)
	}
	return nil
}
