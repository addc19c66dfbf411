package shader

import (
	"github.com/gekko3d/learngl/logging"
)

// NotFound is the location a driver reports for an unknown uniform. Uploads
// to it are ignored by GL.
const NotFound int32 = -1

// LocationResolver queries the driver for a uniform location.
type LocationResolver func(name string) int32

// UniformCache memoizes uniform locations by name. Misses are stored too,
// NotFound included, so a name is resolved at most once.
type UniformCache struct {
	resolve   LocationResolver
	locations map[string]int32
	log       logging.Logger
}

func NewUniformCache(resolve LocationResolver, log logging.Logger) *UniformCache {
	return &UniformCache{
		resolve:   resolve,
		locations: make(map[string]int32),
		log:       logging.OrNop(log),
	}
}

func (c *UniformCache) Location(name string) int32 {
	if loc, ok := c.locations[name]; ok {
		return loc
	}

	loc := c.resolve(name)
	if loc == NotFound {
		c.log.Warnf("uniform %q does not exist", name)
	}
	c.locations[name] = loc
	return loc
}

func (c *UniformCache) Len() int {
	return len(c.locations)
}

// Reset drops every cached location.
func (c *UniformCache) Reset() {
	c.locations = make(map[string]int32)
}
