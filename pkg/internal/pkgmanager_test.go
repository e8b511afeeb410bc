package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserAgent(t *testing.T) {
	pm, ok := ParseUserAgent("pnpm/8.6.0 npm/? node/v18.16.0 darwin x64")
	require.True(t, ok)
	assert.Equal(t, PackageManager{Name: "pnpm", Version: "8.6.0"}, pm)

	pm, ok = ParseUserAgent("yarn")
	require.True(t, ok)
	assert.Equal(t, PackageManager{Name: "yarn"}, pm)

	_, ok = ParseUserAgent("")
	assert.False(t, ok)

	assert.Equal(t, PackageManager{Name: "npm"}, DetectPackageManager(""))
	assert.Equal(t, "bun", DetectPackageManager("bun/1.0.0").Name)
}

func TestIsYarn1(t *testing.T) {
	tests := []struct {
		pm   PackageManager
		want bool
	}{
		{PackageManager{Name: "yarn", Version: "1.22.19"}, true},
		{PackageManager{Name: "yarn", Version: "3.6.1"}, false},
		{PackageManager{Name: "yarn", Version: "1.x-custom"}, true},
		{PackageManager{Name: "yarn", Version: "v1.22.19"}, true},
		{PackageManager{Name: "yarn", Version: "1.22"}, true},
		{PackageManager{Name: "yarn", Version: "1"}, true},
		{PackageManager{Name: "yarn", Version: "1.0.0-rc.1"}, true},
		{PackageManager{Name: "yarn", Version: "2.0.0-rc.1"}, false},
		{PackageManager{Name: "yarn", Version: "v4.0.2"}, false},
		{PackageManager{Name: "yarn"}, false},
		{PackageManager{Name: "npm", Version: "1.0.0"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.pm.Name+"@"+tt.pm.Version, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pm.IsYarn1())
		})
	}
}

func TestTranslateCommand(t *testing.T) {
	tests := []struct {
		name    string
		pm      PackageManager
		command string
		want    string
	}{
		{"npm create", PackageManager{Name: "npm", Version: "9.0.0"}, "npm create vue@latest TARGET_DIR", "npm create vue@latest TARGET_DIR"},
		{"pnpm create", PackageManager{Name: "pnpm", Version: "8.0.0"}, "npm create vue@latest TARGET_DIR", "pnpm create vue@latest TARGET_DIR"},
		{"yarn1 create", PackageManager{Name: "yarn", Version: "1.22.19"}, "npm create vue@latest TARGET_DIR", "yarn create vue TARGET_DIR"},
		{"yarn berry create", PackageManager{Name: "yarn", Version: "3.6.1"}, "npm create vue@latest TARGET_DIR", "yarn create vue@latest TARGET_DIR"},
		{"pnpm exec", PackageManager{Name: "pnpm", Version: "8.0.0"}, "npm exec nuxi init TARGET_DIR", "pnpm dlx nuxi init TARGET_DIR"},
		{"yarn berry exec", PackageManager{Name: "yarn", Version: "3.6.1"}, "npm exec nuxi init TARGET_DIR", "yarn dlx nuxi init TARGET_DIR"},
		{"yarn1 exec", PackageManager{Name: "yarn", Version: "1.22.19"}, "npm exec nuxi init TARGET_DIR", "npm exec nuxi init TARGET_DIR"},
		{"bun exec", PackageManager{Name: "bun", Version: "1.0.0"}, "npm exec nuxi init TARGET_DIR", "npm exec nuxi init TARGET_DIR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pm.TranslateCommand(tt.command))
		})
	}
}

func TestBuildCustomCommand(t *testing.T) {
	pm := PackageManager{Name: "pnpm", Version: "8.0.0"}
	name, args, err := pm.BuildCustomCommand("npm create svelte@latest TARGET_DIR", "my app")
	require.NoError(t, err)
	assert.Equal(t, "pnpm", name)
	assert.Equal(t, []string{"create", "svelte@latest", "my app"}, args)

	_, _, err = pm.BuildCustomCommand("", "x")
	assert.Error(t, err)
}

func TestNextSteps(t *testing.T) {
	assert.Equal(t, []string{"yarn", "yarn dev"}, PackageManager{Name: "yarn", Version: "1.22.0"}.NextSteps())
	assert.Equal(t, []string{"npm install", "npm run dev"}, PackageManager{Name: "npm"}.NextSteps())
	assert.Equal(t, []string{"pnpm install", "pnpm run dev"}, PackageManager{Name: "pnpm"}.NextSteps())
}
