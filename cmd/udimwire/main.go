package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"udim-wireframe/internal/batch"
	"udim-wireframe/internal/config"
	"udim-wireframe/internal/encode"
	"udim-wireframe/internal/logger"
	"udim-wireframe/internal/raster"
	"udim-wireframe/internal/render"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	outputDir := flag.String("output", "", "Output directory (default: current directory)")
	baseName := flag.String("name", "", "Output file prefix (default: mesh file name)")
	size := flag.Int("size", 0, "Tile resolution in pixels (default: 4096)")
	width := flag.Int("width", 0, "Line width in pixels (default: 1)")
	noAA := flag.Bool("no-aa", false, "Disable anti-aliasing")
	invert := flag.Bool("invert", false, "White lines on black")
	format := flag.String("format", "", "Output format: png, webp, tga (default: png)")
	backend := flag.String("backend", "", "Rasterizer: vector, gg (default: vector)")
	noPreview := flag.Bool("no-preview", false, "Skip the UDIM contact sheet")
	debug := flag.Bool("debug", false, "Enable debug logging")
	logFile := flag.String("log", "", "Also write logs to this file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] mesh.obj [mesh.obj...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	meshes := flag.Args()
	if len(meshes) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		BaseName:  *baseName,
		TileSize:  *size,
		LineWidth: *width,
		NoAA:      *noAA,
		Invert:    *invert,
		Format:    *format,
		Backend:   *backend,
		NoPreview: *noPreview,
		Debug:     *debug,
		LogFile:   *logFile,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Validate has already checked both names.
	fmtOut, _ := encode.ParseFormat(cfg.Format)
	rast, _ := raster.NewBackend(cfg.Backend)

	fmt.Printf("UDIM wireframe -> %s\n", fmtOut.Ext())
	fmt.Printf("Meshes: %d, Tile: %dpx, Line: %dpx, AA: %v, Backend: %s\n",
		len(meshes), cfg.TileSize, cfg.LineWidth, cfg.AntiAlias, rast.Name())
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		BaseName:  cfg.BaseName,
		Render: render.Config{
			TileSize:  cfg.TileSize,
			LineWidth: cfg.LineWidth,
			AntiAlias: cfg.AntiAlias,
			Invert:    cfg.Invert,
			Format:    fmtOut,
			Backend:   rast,
		},
		Preview: cfg.Preview,
		Log:     logger.Log,
	}

	results := batch.Run(batchCfg, meshes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	tiles, failed := 0, 0
	for _, r := range results {
		tiles += len(r.Tiles)
		switch {
		case r.Failed():
			failed++
			fmt.Printf("  FAILED %s: %s\n", r.Mesh, r.Error)
		case r.Warning != "":
			fmt.Printf("  WARNING %s: %s\n", r.Mesh, r.Warning)
		default:
			fmt.Printf("  %s: %d tiles\n", r.Mesh, len(r.Tiles))
		}
	}
	fmt.Printf("Tiles written: %d, meshes failed: %d/%d\n", tiles, failed, len(results))

	// Write manifest
	if cfg.Manifest && tiles > 0 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			logger.Log.Warn("manifest write failed", zap.Error(err))
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		logger.Sync()
		os.Exit(1)
	}
}
