// bakemodels compiles block model and blockstate documents into a
// packed cooked-quad cache ready for rendering.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/DragonQuiz/mcedit2/internal/assets"
	"github.com/DragonQuiz/mcedit2/internal/blocks"
	"github.com/DragonQuiz/mcedit2/internal/config"
	"github.com/DragonQuiz/mcedit2/internal/engine/bake"
	"github.com/DragonQuiz/mcedit2/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("bake failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	set, err := blocks.LoadRegistry(cfg.Assets.Registry)
	if err != nil {
		return err
	}
	log.Info("block registry loaded",
		zap.String("path", cfg.Assets.Registry),
		zap.Int("blocks", set.Len()))

	loader := assets.NewDirLoader(cfg.Assets.Dir)
	engine := bake.New(loader, set, log)

	// The referenced-texture set is what an atlas builder would
	// consume; report it even when no atlas index is configured.
	names := engine.TextureNames()
	log.Info("textures referenced", zap.Int("count", len(names)))
	for _, name := range names {
		log.Debug("texture", zap.String("name", name))
	}

	atlas, err := bake.LoadAtlasIndex(cfg.Atlas.Index)
	if err != nil {
		return err
	}
	engine.CookQuads(atlas)

	if cfg.Output.Path == "" {
		return nil
	}

	out, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if err := engine.Store().Export(out); err != nil {
		return fmt.Errorf("exporting cooked models: %w", err)
	}
	log.Info("cooked models written", zap.String("path", cfg.Output.Path))
	return nil
}
