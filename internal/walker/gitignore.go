package walker

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreStack tracks .gitignore rules as the walk descends into
// directories. Each layer corresponds to one visited directory; layers
// with no .gitignore carry a nil parser to keep stack depth aligned.
type ignoreStack struct {
	layers []ignoreLayer
}

type ignoreLayer struct {
	dir    string
	parser *ignore.GitIgnore
}

func newIgnoreStack() *ignoreStack {
	return &ignoreStack{}
}

// push loads .gitignore from a directory and pushes its rules onto the stack.
func (s *ignoreStack) push(dir string) {
	gitignorePath := filepath.Join(dir, ".gitignore")
	parser, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		// No .gitignore or parse error
		s.layers = append(s.layers, ignoreLayer{dir: dir, parser: nil})
		return
	}
	s.layers = append(s.layers, ignoreLayer{dir: dir, parser: parser})
}

// pop removes the top layer.
func (s *ignoreStack) pop() {
	if len(s.layers) > 0 {
		s.layers = s.layers[:len(s.layers)-1]
	}
}

// isIgnored checks if a path is matched by any active .gitignore layer.
// Directory paths are checked with a trailing slash so dir-only rules apply.
func (s *ignoreStack) isIgnored(fullPath string, isDir bool) bool {
	for _, layer := range s.layers {
		if layer.parser == nil {
			continue
		}
		rel, err := filepath.Rel(layer.dir, fullPath)
		if err != nil {
			continue
		}
		checkPath := rel
		if isDir {
			checkPath = rel + "/"
		}
		if layer.parser.MatchesPath(checkPath) {
			return true
		}
	}
	return false
}
