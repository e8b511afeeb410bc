package internal

import (
	"path/filepath"
	"regexp"
	"strings"
)

// SwcSuffix marks templates that swap the React plugin for its SWC build.
const SwcSuffix = "-swc"

const (
	reactPlugin    = "@vitejs/plugin-react"
	reactSwcPlugin = "@vitejs/plugin-react-swc"
)

var reactPluginDependency = regexp.MustCompile(`"@vitejs/plugin-react": ".+?"`)

// StripSwc removes the first SwcSuffix marker from template.
func StripSwc(template string) (string, bool) {
	if !strings.Contains(template, SwcSuffix) {
		return template, false
	}
	return strings.Replace(template, SwcSuffix, "", 1), true
}

// SetupReactSwc patches a materialized React project to use the SWC plugin.
// Both edits are literal; a file without the expected text is left alone.
func SetupReactSwc(root string, isTS bool) error {
	err := editFile(filepath.Join(root, ManifestFile), func(content string) string {
		loc := reactPluginDependency.FindStringIndex(content)
		if loc == nil {
			return content
		}
		return content[:loc[0]] + `"` + reactSwcPlugin + `": "^3.0.0"` + content[loc[1]:]
	})
	if err != nil {
		return err
	}

	config := "vite.config.js"
	if isTS {
		config = "vite.config.ts"
	}
	return editFile(filepath.Join(root, config), func(content string) string {
		return strings.Replace(content, reactPlugin, reactSwcPlugin, 1)
	})
}
