package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered mesh in the output manifest.
type ManifestEntry struct {
	Mesh     string         `json:"mesh"`
	BaseName string         `json:"base_name"`
	UVs      int            `json:"uvs"`
	Faces    int            `json:"faces"`
	Preview  string         `json:"preview,omitempty"`
	Tiles    []ManifestTile `json:"tiles"`
}

// ManifestTile places one tile file on the UDIM grid.
type ManifestTile struct {
	UDIM  int    `json:"udim"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Image string `json:"image"`
}

// WriteManifest writes manifest.json for every mesh that produced tiles.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if len(r.Tiles) == 0 {
			continue
		}
		e := ManifestEntry{
			Mesh:     r.Mesh,
			BaseName: r.BaseName,
			UVs:      r.UVs,
			Faces:    r.Faces,
			Preview:  r.Preview,
			Tiles:    make([]ManifestTile, len(r.Tiles)),
		}
		for i, t := range r.Tiles {
			e.Tiles[i] = ManifestTile{UDIM: t.Tile, Row: t.Row, Col: t.Col, Image: t.File}
		}
		entries = append(entries, e)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
