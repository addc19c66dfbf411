package learngl

import (
	"path/filepath"
	"sync"

	"github.com/gekko3d/learngl/gfx/texture"
	"github.com/google/uuid"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// AssetServer decodes textures once per path and hands out the cached image
// on later requests.
type AssetServer struct {
	mu       sync.Mutex
	root     string
	opts     texture.Options
	textures map[AssetId]*texture.Image
	byPath   map[string]AssetId
	load     func(path string, opts texture.Options) (*texture.Image, error)
}

// AssetServerModule installs an AssetServer resolving relative paths
// against Root. Textures are flipped vertically to match GL's origin.
type AssetServerModule struct {
	Root    string
	MaxSize int
}

func NewAssetServer(root string, opts texture.Options) *AssetServer {
	return &AssetServer{
		root:     root,
		opts:     opts,
		textures: make(map[AssetId]*texture.Image),
		byPath:   make(map[string]AssetId),
		load:     texture.Load,
	}
}

func (mod AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewAssetServer(mod.Root, texture.Options{FlipY: true, MaxSize: mod.MaxSize}))
}

func (server *AssetServer) resolve(path string) string {
	if server.root == "" || filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(server.root, path)
}

// LoadTexture returns the decoded texture at path, decoding it on first use.
// Failures are not cached.
func (server *AssetServer) LoadTexture(path string) (*texture.Image, error) {
	full := server.resolve(path)

	server.mu.Lock()
	defer server.mu.Unlock()

	if id, ok := server.byPath[full]; ok {
		return server.textures[id], nil
	}

	img, err := server.load(full, server.opts)
	if err != nil {
		return nil, err
	}
	id := makeAssetId()
	server.textures[id] = img
	server.byPath[full] = id
	return img, nil
}

func (server *AssetServer) Len() int {
	server.mu.Lock()
	defer server.mu.Unlock()

	return len(server.textures)
}
