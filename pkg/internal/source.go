package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// TemplateSource is a directory holding one template-<name> tree per local
// template.
type TemplateSource struct {
	Root    string
	tempDir string
}

// OpenTemplateSource presents location as a directory. A git URL is shallow
// cloned into a temporary directory that Close removes; any other location
// must be a local directory and is used in place.
func OpenTemplateSource(ctx context.Context, location string) (*TemplateSource, error) {
	if !isGitURL(location) {
		info, err := os.Stat(location)
		if err != nil {
			return nil, fmt.Errorf("cannot open template source: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("template source %s is not a directory", location)
		}
		return &TemplateSource{Root: location}, nil
	}

	tmpDir, err := os.MkdirTemp("", "create-vite")
	if err != nil {
		return nil, err
	}
	_, err = git.PlainCloneContext(ctx, tmpDir, false, &git.CloneOptions{
		URL:   location,
		Depth: 1,
	})
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("cannot open template source %s: %w", location, err)
	}
	return &TemplateSource{Root: tmpDir, tempDir: tmpDir}, nil
}

// isGitURL matches scheme URLs (https://, ssh://, file://) and scp-like
// git@host:path locations.
func isGitURL(location string) bool {
	return strings.Contains(location, "://") || strings.HasPrefix(location, "git@")
}

// Dir is the directory of a local template.
func (s *TemplateSource) Dir(template string) string {
	return filepath.Join(s.Root, "template-"+template)
}

// Close removes a cloned source.
func (s *TemplateSource) Close() error {
	if s.tempDir == "" {
		return nil
	}
	return os.RemoveAll(s.tempDir)
}
