// Package loaders converts external mesh file formats into the vertex and
// face lists the geometry package builds meshes from.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ajwaitz/ray-trace-go/pkg/core"
)

// OBJData contains the raw data loaded from an OBJ-style mesh file
type OBJData struct {
	Vertices []core.Vec3 // Vertex positions
	Faces    []int       // Triangle indices, 0-based, 3 per face
}

// LoadOBJ loads a line-oriented OBJ mesh file from disk
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ parses the line-oriented vertex/face text format:
// "v x y z" lines declare vertices, "f i j k" lines declare triangular
// faces with 1-based vertex indices. Slash-suffixed index forms
// ("f 1/2/3 ...") are accepted by taking the vertex index before the
// first slash. Comments and unknown keywords are skipped.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}
	scanner := bufio.NewScanner(r)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			data.Vertices = append(data.Vertices, vertex)
		case "f":
			face, err := parseFace(fields[1:], len(data.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			data.Faces = append(data.Faces, face...)
		default:
			// Normals, texture coordinates, groups etc. are ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	return data, nil
}

func parseVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid vertex coordinate %q: %w", fields[i], err)
		}
		coords[i] = val
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

func parseFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("only triangular faces are supported, got %d indices", len(fields))
	}

	face := make([]int, 3)
	for i, field := range fields {
		// "i", "i/t", "i/t/n" and "i//n" all start with the vertex index
		idxStr := strings.SplitN(field, "/", 2)[0]
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("invalid face index %q: %w", field, err)
		}
		if idx < 1 || idx > vertexCount {
			return nil, fmt.Errorf("face index %d out of range (%d vertices declared)", idx, vertexCount)
		}
		face[i] = idx - 1
	}
	return face, nil
}
