package discover

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions are the file extensions treated as log files when
// scanning a directory.
var DefaultExtensions = []string{".log", ".txt", ".out", ".err"}

// Find resolves an input path to its candidate log files. A regular file
// resolves to itself; a directory is searched recursively for files carrying
// one of the given extensions (DefaultExtensions when empty). A path that is
// neither is an error.
func Find(inputPath string, extensions []string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("input path does not exist: %s", inputPath)
	}

	if !info.IsDir() {
		return []string{inputPath}, nil
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var files []string
	for _, ext := range extensions {
		pattern := filepath.Join(inputPath, "**", "*"+ext)
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	return files, nil
}
