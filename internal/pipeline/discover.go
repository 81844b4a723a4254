package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover collects candidate file paths under dir, sorted
// lexicographically for a deterministic batch order (the batch index each
// name gets depends on it). Dot-files and dot-directories (including
// .bulkrename) are always skipped. With recursive false only dir itself is
// scanned. A non-empty extensions whitelist (".txt", case-insensitive)
// filters by extension.
func Discover(dir string, recursive bool, extensions []string) ([]string, error) {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == dir {
				return nil
			}
			if !recursive || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if len(allowed) > 0 && !allowed[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
