package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// VCSDir is never treated as blocking content and survives a purge.
const VCSDir = ".git"

// RenameFiles maps template file names to the name written into the project.
// npm refuses to publish a file named .gitignore, so templates carry it under
// another name.
var RenameFiles = map[string]string{
	"_gitignore": ".gitignore",
}

// OutputName returns the on-disk name for a template entry.
func OutputName(file string) string {
	if renamed, ok := RenameFiles[file]; ok {
		return renamed
	}
	return file
}

// Copy copies src to dest. Directories are copied recursively, files byte for
// byte. An existing dest is overwritten.
func Copy(src string, dest string) error {
	if _, err := os.Stat(src); err != nil {
		return err
	}
	return cp.Copy(src, dest)
}

// IsEmpty reports whether dir has no entries other than version control
// metadata.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) == 0 || (len(entries) == 1 && entries[0].Name() == VCSDir), nil
}

// Exists reports whether path exists.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// EmptyDir removes everything in dir except version control metadata. A
// missing dir is not an error.
func EmptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Name() == VCSDir {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// editFile rewrites file through edit. The file is only written when its
// content changed.
func editFile(file string, edit func(string) string) error {
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	edited := edit(string(content))
	if edited == string(content) {
		return nil
	}
	return os.WriteFile(file, []byte(edited), info.Mode().Perm())
}
