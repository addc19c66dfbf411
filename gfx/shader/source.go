package shader

import (
	"io/fs"
	"path"

	"github.com/gekko3d/learngl/logging"
)

// Source is the text of a vertex/fragment pair plus the paths it came from.
type Source struct {
	Name         string
	VertexPath   string
	FragmentPath string
	Vertex       string
	Fragment     string
}

// ReadSource reads both stages wholesale from fsys. Paths are slash-separated
// as required by io/fs.
func ReadSource(fsys fs.FS, vertexPath, fragmentPath string) (Source, error) {
	src := Source{
		Name:         sourceName(vertexPath),
		VertexPath:   vertexPath,
		FragmentPath: fragmentPath,
	}

	vs, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return src, &SourceError{Path: vertexPath, Err: err}
	}
	fsrc, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return src, &SourceError{Path: fragmentPath, Err: err}
	}

	src.Vertex = string(vs)
	src.Fragment = string(fsrc)
	return src, nil
}

// Load reads and compiles a program in one step.
func Load(driver Driver, fsys fs.FS, vertexPath, fragmentPath string, log logging.Logger) (*Program, error) {
	src, err := ReadSource(fsys, vertexPath, fragmentPath)
	if err != nil {
		logging.OrNop(log).Errorf("%v", err)
		return nil, err
	}
	return Compile(driver, src, log)
}

func sourceName(p string) string {
	base := path.Base(p)
	return base[:len(base)-len(path.Ext(base))]
}
