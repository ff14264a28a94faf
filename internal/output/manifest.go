package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ManifestFilename is the script-like manifest consumed by the external
// display layer.
const ManifestFilename = "article-config.js"

// BuildManifest renders the manifest listing the created filenames in
// descending order, so the newest date and highest sequence come first.
// stem identifies the source workbook the articles came from.
func BuildManifest(stem string, filenames []string) string {
	ordered := make([]string, len(filenames))
	copy(ordered, filenames)
	sort.Sort(sort.Reverse(sort.StringSlice(ordered)))

	quoted := make([]string, len(ordered))
	for i, f := range ordered {
		quoted[i] = "'" + f + "'"
	}

	return fmt.Sprintf(`// Article configuration for %s
const articleConfigs = {
  files: [
    %s
  ]
};`, stem, strings.Join(quoted, ", "))
}

// WriteManifest writes the manifest into dir.
func WriteManifest(dir, stem string, filenames []string) error {
	path := filepath.Join(dir, ManifestFilename)
	if err := os.WriteFile(path, []byte(BuildManifest(stem, filenames)), 0o644); err != nil {
		return &Error{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return nil
}
