package obj

import (
	"bufio"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Parse reads an OBJ file and returns its UV list and the UV indices of every
// face that references at least one UV.
// Only a file that cannot be opened or read is an error; malformed records
// are skipped.
func Parse(path string) ([]UV, []Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	uvs, faces, err := Decode(f)
	if err != nil {
		return nil, nil, &ParseError{Path: path, Err: err}
	}
	return uvs, faces, nil
}

// Decode scans OBJ text from r. Ill-formed UTF-8 sequences are dropped
// before the records are split.
func Decode(r io.Reader) ([]UV, []Face, error) {
	clean := transform.Chain(
		runes.ReplaceIllFormed(),
		runes.Remove(runes.Predicate(func(c rune) bool { return c == utf8.RuneError })),
	)
	br := bufio.NewReader(transform.NewReader(r, clean))

	var uvs []UV
	var faces []Face

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			fields := strings.Fields(line)
			if len(fields) > 0 {
				switch fields[0] {
				case "vt":
					if uv, ok := parseUV(fields[1:]); ok {
						uvs = append(uvs, uv)
					}
				case "f":
					if face := parseFace(fields[1:]); len(face) > 0 {
						faces = append(faces, face)
					}
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
	}

	return uvs, faces, nil
}

// parseUV reads u and v from the fields following "vt".
// Extra fields (w) are ignored. Non-finite or out-of-range values reject
// the record.
func parseUV(fields []string) (UV, bool) {
	if len(fields) < 2 {
		return UV{}, false
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || !usable(u) {
		return UV{}, false
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || !usable(v) {
		return UV{}, false
	}
	return UV{U: u, V: v}, true
}

// parseFace extracts 0-based UV indices from v, v/vt, v//vn and v/vt/vn
// references. References without a vt field contribute nothing.
func parseFace(refs []string) Face {
	var face Face
	for _, ref := range refs {
		parts := strings.Split(ref, "/")
		if len(parts) < 2 || parts[1] == "" {
			continue
		}
		idx, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		face = append(face, idx-1)
	}
	return face
}

// MaxUV bounds the magnitude of a UV component so tile IDs stay well inside
// int range. Records beyond it are skipped.
const MaxUV = 1e9

func usable(f float64) bool {
	return !math.IsNaN(f) && math.Abs(f) <= MaxUV
}
