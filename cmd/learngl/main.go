package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/gekko3d/learngl"
	"github.com/gekko3d/learngl/scenes"
	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "TOML config file",
		EnvVars: []string{"LEARNGL_CONFIG"},
	}
	sceneFlag = &cli.StringFlag{
		Name:  "scene",
		Usage: "scene to draw (" + strings.Join(scenes.Names(), ", ") + ")",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width in screen coordinates",
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height in screen coordinates",
	}
	shaderDirFlag = &cli.StringFlag{
		Name:  "shader-dir",
		Usage: "read shaders from this directory instead of the embedded copies",
	}
	hotReloadFlag = &cli.BoolFlag{
		Name:  "hot-reload",
		Usage: "rebuild programs when files under --shader-dir change",
	}
	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "enable debug logging",
		EnvVars: []string{"LEARNGL_DEBUG"},
	}
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "learngl",
		Usage: "OpenGL tutorial scenes with a fly-through camera",
		Flags: []cli.Flag{
			configFlag,
			sceneFlag,
			widthFlag,
			heightFlag,
			shaderDirFlag,
			hotReloadFlag,
			debugFlag,
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "print the available scenes",
				Action: listScenes,
			},
			{
				Name:   "dumpconfig",
				Usage:  "print the effective configuration as TOML",
				Action: dumpConfig,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config when given and applies the remaining flags on top.
func loadConfig(ctx *cli.Context) (learngl.Config, error) {
	cfg := learngl.DefaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = learngl.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet(sceneFlag.Name) {
		cfg.Scene = ctx.String(sceneFlag.Name)
	}
	if ctx.IsSet(widthFlag.Name) {
		cfg.Window.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Window.Height = ctx.Int(heightFlag.Name)
	}
	if ctx.IsSet(shaderDirFlag.Name) {
		cfg.Shaders.Dir = ctx.String(shaderDirFlag.Name)
	}
	if ctx.IsSet(hotReloadFlag.Name) {
		cfg.Shaders.HotReload = ctx.Bool(hotReloadFlag.Name)
	}
	if ctx.IsSet(debugFlag.Name) {
		cfg.Debug = ctx.Bool(debugFlag.Name)
	}
	return cfg, cfg.Validate()
}

func run(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	return learngl.NewDemoApp(cfg).Run()
}

func listScenes(ctx *cli.Context) error {
	for _, name := range scenes.Names() {
		fmt.Fprintln(ctx.App.Writer, name)
	}
	return nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
