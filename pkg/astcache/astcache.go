// Package astcache keeps parsed documents in an LRU cache so that a document sent many times is
// parsed only once.
package astcache

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"github.com/jensneuse/abstractlogger"
	"go.uber.org/atomic"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/astparser"
)

const DefaultSize = 1024

type Config struct {
	// Size is the number of documents kept, DefaultSize if 0.
	Size    int
	Options astparser.Options
	Logger  abstractlogger.Logger
}

// Cache parses documents with a fixed set of options and remembers the result by the hash of the
// source. Documents handed out by the cache are shared, callers must not modify them. Rewrites go
// through astvisitor, which never mutates its input.
//
// Failed parses are not cached.
type Cache struct {
	parser    *astparser.Parser
	options   astparser.Options
	documents *lru.Cache
	log       abstractlogger.Logger

	hits   *atomic.Int64
	misses *atomic.Int64
}

func New(config Config, registryOptions ...astparser.RegistryOption) (*Cache, error) {
	size := config.Size
	if size == 0 {
		size = DefaultSize
	}
	documents, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	log := config.Logger
	if log == nil {
		log = abstractlogger.NoopLogger
	}
	return &Cache{
		parser:    astparser.NewParser(config.Options, registryOptions...),
		options:   config.Options,
		documents: documents,
		log:       log,
		hits:      atomic.NewInt64(0),
		misses:    atomic.NewInt64(0),
	}, nil
}

// Parse returns the cached document for source, parsing it on a miss.
func (c *Cache) Parse(source string) (*ast.Document, error) {
	key := Key(source, c.options)
	if cached, ok := c.documents.Get(key); ok {
		if document, ok := cached.(*ast.Document); ok {
			c.hits.Inc()
			return document, nil
		}
	}
	c.misses.Inc()

	document, err := c.parser.Parse(source)
	if err != nil {
		return nil, err
	}

	if evicted := c.documents.Add(key, document); evicted {
		c.log.Debug("astcache.Cache.Parse",
			abstractlogger.String("event", "evicted"),
			abstractlogger.Int("len", c.documents.Len()),
		)
	}
	return document, nil
}

type Stats struct {
	Hits   int64
	Misses int64
	Len    int
}

func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.documents.Len(),
	}
}

// Purge drops all documents and resets the counters.
func (c *Cache) Purge() {
	c.documents.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Key hashes source together with the options that change the parsed document.
func Key(source string, options astparser.Options) uint64 {
	var prefix [17]byte
	if options.NoLocation {
		prefix[0] = 1
	}
	binary.LittleEndian.PutUint64(prefix[1:9], uint64(options.MaxDepth))
	binary.LittleEndian.PutUint64(prefix[9:17], uint64(options.MaxTokens))

	digest := xxhash.New()
	_, _ = digest.Write(prefix[:])
	_, _ = digest.WriteString(source)
	return digest.Sum64()
}
