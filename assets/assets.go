package assets

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/logger"
	"github.com/automoto/orbitrig/shared/leveldata"
	"go.uber.org/zap"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Levels returns the embedded level files, rooted at the assets directory.
func Levels() fs.FS {
	return assetFS
}

// LoadSkirmish loads a layout from disk when path names an existing file, otherwise
// from the embedded levels.
func LoadSkirmish(path string) (*leveldata.Skirmish, error) {
	fsys, name := resolve(path)
	data, err := leveldata.LoadSkirmish(fsys, name, config.Scene.PixelsPerUnit)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("level loaded",
		zap.String("path", path),
		zap.Int("units", len(data.Units)),
		zap.Bool("rig_spawn", data.HasRig),
	)
	return data, nil
}

func resolve(path string) (fs.FS, string) {
	if _, err := os.Stat(path); err == nil {
		return os.DirFS(filepath.Dir(path)), filepath.Base(path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Log.Warn("level not readable from disk, using embedded copy", zap.String("path", path), zap.Error(err))
	}
	return assetFS, filepath.ToSlash(path)
}
