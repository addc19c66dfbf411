package learngl

import (
	"errors"
	"fmt"
	"os"

	"github.com/gekko3d/learngl/gfx/core"
	"github.com/gekko3d/learngl/scenes"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window   WindowConfig      `toml:"window"`
	Scene    string            `toml:"scene"`
	Camera   CameraConfig      `toml:"camera"`
	Shaders  ShaderConfig      `toml:"shaders"`
	Assets   AssetConfig       `toml:"assets"`
	Textures map[string]string `toml:"textures"`
	Debug    bool              `toml:"debug"`
}

type WindowConfig struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"`
	VSync        bool   `toml:"vsync"`
	CaptureMouse bool   `toml:"capture_mouse"`
}

type CameraConfig struct {
	Position    [3]float32 `toml:"position"`
	Yaw         float32    `toml:"yaw"`
	Pitch       float32    `toml:"pitch"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	FreePitch   bool       `toml:"free_pitch"`
}

type ShaderConfig struct {
	// Dir holds the .vs/.fs files; empty means the embedded copies.
	Dir       string `toml:"dir"`
	HotReload bool   `toml:"hot_reload"`
}

type AssetConfig struct {
	Root           string `toml:"root"`
	MaxTextureSize int    `toml:"max_texture_size"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:        defaultWindowWidth,
			Height:       defaultWindowHeight,
			Title:        defaultWindowTitle,
			VSync:        true,
			CaptureMouse: true,
		},
		Scene: scenes.TexturedName,
		Camera: CameraConfig{
			Position:    defaultCameraPosition,
			Yaw:         core.DefaultYaw,
			Pitch:       core.DefaultPitch,
			Speed:       core.DefaultSpeed,
			Sensitivity: core.DefaultSensitivity,
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys the file omits keep
// their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	var errs []error
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height))
	}
	if !scenes.Exists(cfg.Scene) {
		errs = append(errs, fmt.Errorf("scene %q is not one of %v", cfg.Scene, scenes.Names()))
	}
	if cfg.Camera.Speed < 0 {
		errs = append(errs, fmt.Errorf("camera speed %v is negative", cfg.Camera.Speed))
	}
	if cfg.Camera.Sensitivity < 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity %v is negative", cfg.Camera.Sensitivity))
	}
	if cfg.Shaders.HotReload && cfg.Shaders.Dir == "" {
		errs = append(errs, errors.New("shader hot reload needs a shader dir"))
	}
	if cfg.Assets.MaxTextureSize < 0 {
		errs = append(errs, fmt.Errorf("max texture size %d is negative", cfg.Assets.MaxTextureSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Marshal renders cfg as TOML.
func (cfg Config) Marshal() ([]byte, error) {
	return toml.Marshal(cfg)
}

func (c CameraConfig) NewCamera() *core.Camera {
	cam := core.NewCamera(mgl32.Vec3(c.Position), mgl32.Vec3{0, 1, 0}, c.Yaw, c.Pitch)
	cam.SetMovementSpeed(c.Speed)
	cam.SetMouseSensitivity(c.Sensitivity)
	return cam
}

// Modules lists the modules of the demo that do not need a window, in
// install order.
func (cfg Config) Modules() []Module {
	reload := ShaderReloadModule{}
	if cfg.Shaders.HotReload {
		reload.Dir = cfg.Shaders.Dir
	}
	return []Module{
		LoggingModule{Prefix: "learngl", Debug: cfg.Debug},
		TimeModule{},
		InputModule{CaptureMouse: cfg.Window.CaptureMouse},
		FlyingCameraModule{Camera: cfg.Camera.NewCamera(), FreePitch: cfg.Camera.FreePitch},
		AssetServerModule{Root: cfg.Assets.Root, MaxSize: cfg.Assets.MaxTextureSize},
		reload,
	}
}

func (cfg Config) WindowModule() PlatformWindowModule {
	return PlatformWindowModule{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
	}
}

func (cfg Config) RendererModule() RendererModule {
	return RendererModule{Scene: cfg.Scene, ShaderDir: cfg.Shaders.Dir, TexturePaths: cfg.Textures}
}

// NewDemoApp builds the demo described by cfg. Window and scene failures are
// reported by Run.
func NewDemoApp(cfg Config) *App {
	return NewAppBuilder().
		UseModule(cfg.Modules()...).
		Build().
		UseRenderer(cfg.RendererModule(), cfg.WindowModule())
}
