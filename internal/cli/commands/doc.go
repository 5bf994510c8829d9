package commands

import (
	"os"
	"sync"

	toml2 "github.com/conduit-lang/toml2"
	"github.com/conduit-lang/toml2/cache"
	"github.com/conduit-lang/toml2/internal/config"
	"github.com/conduit-lang/toml2/compiler/tree"
)

var (
	docCache     *cache.Cache
	docCacheOnce sync.Once
)

// parseFile reads and parses path, routing through the shared content-hash
// cache when the loaded config enables it (the default). The cache lives
// for one process: within a single toml2 invocation identical content is
// lexed and parsed once, while separate invocations (e.g. from a shell
// loop) each start with an empty cache.
func parseFile(path string) (*tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.Cache.Enabled {
		return toml2.ParseBytes(data)
	}

	docCacheOnce.Do(func() {
		docCache, err = cache.New(cfg.Cache.Size)
	})
	if err != nil {
		return nil, err
	}
	return docCache.Parse(data)
}
