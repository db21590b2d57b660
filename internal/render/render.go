// Package render turns parsed UVs and faces into one wireframe image per
// UDIM tile.
package render

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"udim-wireframe/internal/encode"
	"udim-wireframe/internal/obj"
	"udim-wireframe/internal/postprocess"
	"udim-wireframe/internal/raster"
	"udim-wireframe/internal/udim"
)

// Supersample is the linear oversampling factor used for anti-aliasing.
const Supersample = 2

// Config is the immutable parameter set for one render.
type Config struct {
	OutputDir string
	BaseName  string
	TileSize  int
	LineWidth int
	AntiAlias bool
	Invert    bool

	Format  encode.Format
	Backend raster.Backend
	Log     *zap.Logger
}

// TileFunc receives each finished tile at its final resolution.
type TileFunc func(img image.Image, tile int)

// RenderError reports a tile that could not be written.
type RenderError struct {
	Tile int
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: tile %d: write %s: %v", e.Tile, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// WorkingSize returns the canvas edge length tiles are rasterized at.
func (c Config) WorkingSize() int {
	if c.AntiAlias {
		return c.TileSize * Supersample
	}
	return c.TileSize
}

// WorkingWidth returns the stroke width on the working canvas, at least one
// pixel.
func (c Config) WorkingWidth() float64 {
	w := c.LineWidth
	if c.AntiAlias {
		w *= Supersample
	}
	return float64(max(1, w))
}

// TilePath returns where a tile image is written.
func (c Config) TilePath(tile int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("%s-%d%s", c.BaseName, tile, c.Format.Ext()))
}

// Render rasterizes every touched tile in ascending tile order, writes it and
// then calls onTile. It stops at the first write failure; tiles written
// before it stay on disk.
func Render(uvs []obj.UV, faces []obj.Face, cfg Config, onTile TileFunc) error {
	if cfg.TileSize <= 0 {
		return fmt.Errorf("render: invalid tile size %d", cfg.TileSize)
	}
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	backend := cfg.Backend
	if backend == nil {
		backend = raster.Vector{}
	}

	buckets := udim.Bucket(uvs, faces)
	if n := buckets.Skipped(); n > 0 {
		log.Debug("skipped faces with out-of-range UV indices", zap.Int("faces", n))
	}

	scheme := raster.SchemeFor(cfg.Invert)
	work := cfg.WorkingSize()
	width := cfg.WorkingWidth()

	for _, id := range buckets.IDs() {
		start := time.Now()
		outlines := buckets.Outlines(id)

		var cov *image.Alpha
		var err error
		if cfg.AntiAlias {
			cov, err = raster.RenderTile(outlines, work, width, backend)
		} else {
			cov, err = raster.RenderTileHard(outlines, work, width, backend)
		}
		if err != nil {
			return fmt.Errorf("render: tile %d: %w", id, err)
		}
		if cfg.AntiAlias {
			cov = postprocess.Downsample(cov, cfg.TileSize)
		}
		img := scheme.Paint(cov)

		path := cfg.TilePath(id)
		if err := cfg.Format.WriteFile(path, img); err != nil {
			return &RenderError{Tile: id, Path: path, Err: err}
		}

		log.Debug("tile written",
			zap.Int("tile", id),
			zap.Int("faces", len(outlines)),
			zap.Int("canvas", work),
			zap.String("path", path),
			zap.Duration("took", time.Since(start)),
		)

		if onTile != nil {
			onTile(img, id)
		}
	}

	return nil
}
