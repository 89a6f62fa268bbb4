// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// FindFilesByExtension returns every file under rootPath whose name ends with
// extension, sorted lexically. rootPath may also name a single file. A
// missing rootPath yields no files and no error.
func FindFilesByExtension(fsys afero.Fs, rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	info, err := fsys.Stat(rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		if strings.HasSuffix(info.Name(), extension) {
			return []string{rootPath}, nil
		}
		return nil, nil
	}

	var files []string
	err = afero.Walk(fsys, rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
