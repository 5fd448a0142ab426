package mesh

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/whitted/asset"
	"github.com/achilleasa/whitted/log"
	"github.com/achilleasa/whitted/types"
)

// A triangle mesh in object space.
type Mesh struct {
	Name     string
	Vertices []types.Vec3

	// Vertex indices for each triangular face.
	Faces [][3]int
}

type wavefrontReader struct {
	logger log.Logger
	mesh   *Mesh

	// Unsupported record types that have already been reported.
	skipped map[string]bool
}

// Read a mesh from a wavefront obj resource. Only vertex (v) and face (f)
// records are used; quad faces are split into two triangles.
func Read(res *asset.Resource) (*Mesh, error) {
	r := &wavefrontReader{
		logger:  log.New("wavefront reader"),
		mesh:    &Mesh{},
		skipped: make(map[string]bool),
	}

	start := time.Now()
	if err := r.parse(res); err != nil {
		return nil, err
	}
	if r.mesh.Name == "" {
		r.mesh.Name = res.Name()
	}

	r.logger.Infof(
		`parsed mesh "%s" (%d vertices, %d faces) in %d ms`,
		r.mesh.Name, len(r.mesh.Vertices), len(r.mesh.Faces), time.Since(start).Nanoseconds()/1e6,
	)
	return r.mesh, nil
}

func (r *wavefrontReader) parse(res *asset.Resource) error {
	lineNum := 0
	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return emitError(res.Path(), lineNum, err.Error())
			}
			r.mesh.Vertices = append(r.mesh.Vertices, v)
		case "f":
			faces, err := r.parseFace(lineTokens)
			if err != nil {
				return emitError(res.Path(), lineNum, err.Error())
			}
			r.mesh.Faces = append(r.mesh.Faces, faces...)
		case "o", "g":
			if len(lineTokens) < 2 {
				return emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument for object name; got %d`, lineTokens[0], len(lineTokens)-1)
			}
			if r.mesh.Name == "" {
				r.mesh.Name = lineTokens[1]
			}
		default:
			if !r.skipped[lineTokens[0]] {
				r.skipped[lineTokens[0]] = true
				r.logger.Debugf(`[%s] skipping unsupported record type "%s"`, res.Path(), lineTokens[0])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return emitError(res.Path(), lineNum, err.Error())
	}
	if len(r.mesh.Faces) == 0 {
		return emitError(res.Path(), 0, "mesh contains no faces")
	}
	return nil
}

// Parse a triangular or quad face. Each face argument may use any of the
// v, v/vt, v//vn or v/vt/vn forms; only the vertex index is used.
func (r *wavefrontReader) parseFace(lineTokens []string) ([][3]int, error) {
	if len(lineTokens) < 4 || len(lineTokens) > 5 {
		return nil, fmt.Errorf(`unsupported syntax for "f"; expected 3 arguments for triangular face or 4 arguments for a quad face; got %d. Select the triangulation option in your exporter`, len(lineTokens)-1)
	}

	var indices [4]int
	expIndices := 0
	for arg := 0; arg < len(lineTokens)-1; arg++ {
		vTokens := strings.Split(lineTokens[arg+1], "/")

		// The first arg defines the format for the following args
		if arg == 0 {
			expIndices = len(vTokens)
		} else if len(vTokens) != expIndices {
			return nil, fmt.Errorf("expected each face argument to contain %d indices; arg %d contains %d indices", expIndices, arg, len(vTokens))
		}

		if vTokens[0] == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		index, err := selectFaceCoordIndex(vTokens[0], len(r.mesh.Vertices))
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		indices[arg] = index
	}

	faces := [][3]int{{indices[0], indices[1], indices[2]}}
	if len(lineTokens) == 5 {
		faces = append(faces, [3]int{indices[0], indices[2], indices[3]})
	}
	return faces, nil
}

// Generate an error message annotated with the file and line.
func emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)
	if line == 0 {
		return fmt.Errorf("[%s] error: %s", file, msg)
	}
	return fmt.Errorf("[%s: %d] error: %s", file, line, msg)
}

// Convert a 1-based face index into an offset in the vertex list. Negative
// indices reference vertices relative to the end of the list.
func selectFaceCoordIndex(indexToken string, coordListLen int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var offset int
	if index < 0 {
		offset = coordListLen + int(index)
	} else {
		offset = int(index - 1)
	}
	if offset < 0 || offset >= coordListLen {
		return -1, fmt.Errorf("index %d out of bounds", index)
	}
	return offset, nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 64)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = coord
	}
	return v, nil
}
