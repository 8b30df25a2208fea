package catalog

import (
	"sync"

	"github.com/BBoyRomano/idleon-spice-optimizer/data"
)

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the process-wide catalog over the embedded data files,
// loaded once on first access.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(data.EmbeddedFS())
	})
	return defaultCat, defaultErr
}
