package scenes

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScene = errors.New("unknown scene")

var registry = map[string]func() Scene{
	TexturedName:   NewTextured,
	PhongName:      NewPhong,
	MultiLightName: NewMultiLight,
}

// New returns a fresh, not yet set up scene.
func New(name string) (Scene, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return ctor(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Exists(name string) bool {
	_, ok := registry[name]
	return ok
}
