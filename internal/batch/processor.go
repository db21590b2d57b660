package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"udim-wireframe/internal/encode"
	"udim-wireframe/internal/obj"
	"udim-wireframe/internal/preview"
	"udim-wireframe/internal/render"
	"udim-wireframe/internal/udim"
)

// DefaultBaseName is used when neither the config nor the mesh name give one.
const DefaultBaseName = "output"

// Config holds the settings shared by every mesh in a run.
// Render.OutputDir and Render.BaseName are filled in per mesh.
type Config struct {
	OutputDir string
	BaseName  string
	Render    render.Config
	Preview   bool
	Log       *zap.Logger
}

// TileFile describes one written tile.
type TileFile struct {
	Tile int
	Row  int
	Col  int
	File string
}

// Result holds the outcome of processing one mesh.
type Result struct {
	Mesh     string
	BaseName string
	UVs      int
	Faces    int
	Tiles    []TileFile
	Preview  string
	Warning  string
	Error    string
	Duration time.Duration
}

// Failed reports whether the mesh could not be parsed or rendered.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Run renders every mesh in order. Meshes are processed one at a time and a
// failure on one does not stop the others.
func Run(cfg Config, meshes []string) []Result {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	results := make([]Result, 0, len(meshes))
	for i, path := range meshes {
		cfg.Log.Info("mesh",
			zap.Int("n", i+1),
			zap.Int("of", len(meshes)),
			zap.String("path", path),
		)
		results = append(results, processMesh(cfg, path, len(meshes) > 1))
	}
	return results
}

// BaseName picks the file prefix for a mesh. An explicit name wins for a
// single mesh and becomes a prefix when several meshes share a run.
func BaseName(configured, meshPath string, multi bool) string {
	stem := strings.TrimSuffix(filepath.Base(meshPath), filepath.Ext(meshPath))
	switch {
	case configured != "" && multi && stem != "":
		return configured + "_" + stem
	case configured != "":
		return configured
	case stem != "" && stem != "." && stem != string(filepath.Separator):
		return stem
	default:
		return DefaultBaseName
	}
}

func processMesh(cfg Config, path string, multi bool) (res Result) {
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	log := cfg.Log.With(zap.String("mesh", filepath.Base(path)))
	res = Result{Mesh: path, BaseName: BaseName(cfg.BaseName, path, multi)}

	uvs, faces, err := obj.Parse(path)
	if err != nil {
		res.Error = err.Error()
		log.Error("parse failed", zap.Error(err))
		return res
	}
	res.UVs, res.Faces = len(uvs), len(faces)
	log.Info("parsed", zap.Int("uvs", res.UVs), zap.Int("faces", res.Faces))

	if len(uvs) == 0 || len(faces) == 0 {
		res.Warning = "no UVs or faces with UVs found"
		log.Warn(res.Warning)
		return res
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = fmt.Sprintf("create output dir: %v", err)
		log.Error("create output dir", zap.Error(err))
		return res
	}

	rc := cfg.Render
	rc.OutputDir = cfg.OutputDir
	rc.BaseName = res.BaseName
	rc.Log = log

	var sheet *preview.Sheet
	if cfg.Preview {
		sheet = preview.NewSheet()
	}

	err = render.Render(uvs, faces, rc, func(img image.Image, tile int) {
		row, col := udim.RowCol(tile)
		file := filepath.Base(rc.TilePath(tile))
		res.Tiles = append(res.Tiles, TileFile{Tile: tile, Row: row, Col: col, File: file})
		if sheet != nil {
			sheet.Add(img, tile)
		}
		log.Info("tile", zap.Int("udim", tile), zap.String("file", file))
	})
	if err != nil {
		res.Error = err.Error()
		log.Error("render failed", zap.Error(err), zap.Int("written", len(res.Tiles)))
		return res
	}

	if sheet != nil && sheet.Rows() > preview.MaxRows {
		log.Warn("preview skipped", zap.Int("rows", sheet.Rows()), zap.Int("max_rows", preview.MaxRows))
	} else if sheet != nil && sheet.Len() > 0 {
		name := res.BaseName + "-preview.png"
		if err := encode.PNG.WriteFile(filepath.Join(cfg.OutputDir, name), sheet.Image()); err != nil {
			log.Warn("preview write failed", zap.Error(err))
		} else {
			res.Preview = name
		}
	}

	log.Info("done", zap.Int("tiles", len(res.Tiles)), zap.Duration("took", time.Since(start)))
	return res
}
