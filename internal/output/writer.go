package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/news-curator/internal/types"
)

// WriteArticles creates the output directory and writes each rendered file.
// The first failed write aborts the whole run.
func WriteArticles(dir string, files []types.OutputFile) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Error{Message: fmt.Sprintf("failed to create output directory %s", dir), Cause: err}
	}

	for _, f := range files {
		path := filepath.Join(dir, f.Filename)
		if err := os.WriteFile(path, []byte(f.HTML), 0o644); err != nil {
			return &Error{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
		}
	}

	return nil
}
