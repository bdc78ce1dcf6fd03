// Package fsutil reads a project directory into a forest and writes changed
// units back.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/specialistvlad/webtomcp/internal/model"
)

// FindProjectFiles walks root and returns the slash-separated relative
// paths of every file with a known format. The .git directory and paths
// matched by the root .gitignore are skipped.
func FindProjectFiles(root string) ([]string, error) {
	matcher, err := loadIgnore(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if d.Name() == ".git" || matcher.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || matcher.MatchesPath(rel) {
			return nil
		}
		if model.FormatForPath(rel) != model.FormatOther {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func loadIgnore(root string) (*ignore.GitIgnore, error) {
	content, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if os.IsNotExist(err) {
		return ignore.CompileIgnoreLines(), nil
	}
	if err != nil {
		return nil, err
	}
	return ignore.CompileIgnoreLines(strings.Split(string(content), "\n")...), nil
}
