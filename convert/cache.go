package convert

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cached memoizes another converter. Novels repeat short lines constantly
// (chapter markers, dialogue beats, scene separators), and dictionary
// conversion is the slowest step of the pipeline.
type Cached struct {
	inner Converter
	cache *cache.Cache
}

// NewCached wraps a converter with an expiring line cache.
func NewCached(inner Converter) *Cached {
	return &Cached{
		inner: inner,
		cache: cache.New(time.Hour, 10*time.Minute),
	}
}

func (c *Cached) Convert(s string) (string, error) {
	if v, ok := c.cache.Get(s); ok {
		return v.(string), nil
	}
	out, err := c.inner.Convert(s)
	if err != nil {
		return "", err
	}
	c.cache.Set(s, out, cache.DefaultExpiration)
	return out, nil
}
