package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	names := c.TemplateNames()
	assert.Equal(t, []string{
		"vanilla-ts", "vanilla",
		"vue-ts", "vue", "custom-create-vue", "custom-nuxt",
		"react-ts", "react-swc-ts", "react", "react-swc",
		"preact-ts", "preact",
		"lit-ts", "lit",
		"svelte-ts", "svelte", "custom-svelte-kit",
		"create-vite-extra", "create-electron-vite",
	}, names)

	names[0] = "mutated"
	assert.Equal(t, "vanilla-ts", c.TemplateNames()[0], "TemplateNames must return a copy")

	assert.True(t, c.HasTemplate("react-swc-ts"))
	assert.False(t, c.HasTemplate("angular"))
	assert.False(t, c.HasTemplate("react-"))
}

func TestFindVariant(t *testing.T) {
	c := DefaultCatalog()

	v, ok := c.FindVariant("custom-nuxt")
	require.True(t, ok)
	command, delegated := v.CustomCommand()
	assert.True(t, delegated)
	assert.Equal(t, "npm exec nuxi init TARGET_DIR", command)
	assert.Equal(t, "Nuxt ↗", v.Display)

	v, ok = c.FindVariant("vue-ts")
	require.True(t, ok)
	_, delegated = v.CustomCommand()
	assert.False(t, delegated)
	assert.Equal(t, LocalTemplate{}, v.Source)

	_, ok = c.FindVariant("vue-swc")
	assert.False(t, ok)
}

func TestNewCatalog(t *testing.T) {
	t.Run("framework without variants is a template", func(t *testing.T) {
		c, err := NewCatalog([]Framework{
			{Name: "solo"},
			{Name: "multi", Variants: []Variant{{Name: "multi-ts"}, {Name: "multi"}}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"solo", "multi-ts", "multi"}, c.TemplateNames())
		_, ok := c.FindVariant("solo")
		assert.False(t, ok)
	})

	t.Run("duplicate template", func(t *testing.T) {
		_, err := NewCatalog([]Framework{
			{Name: "a", Variants: []Variant{{Name: "x"}}},
			{Name: "b", Variants: []Variant{{Name: "x"}}},
		})
		assert.EqualError(t, err, "catalog contains duplicate template: x")
	})

	t.Run("unknown color", func(t *testing.T) {
		_, err := NewCatalog([]Framework{{Name: "a", Color: "chartreuse"}})
		assert.EqualError(t, err, `framework a has unknown color "chartreuse"`)
	})

	t.Run("unnamed variant", func(t *testing.T) {
		_, err := NewCatalog([]Framework{{Name: "a", Variants: []Variant{{Display: "A"}}}})
		assert.EqualError(t, err, "framework a contains a variant without a name")
	})
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(`
[[framework]]
name = "solid"
color = "blue"

  [[framework.variant]]
  name = "solid-ts"
  display = "TypeScript"

  [[framework.variant]]
  name = "custom-solid"
  custom_command = "npm create solid@latest TARGET_DIR"
`)
	require.NoError(t, err)
	require.Len(t, c.Frameworks, 1)
	assert.Equal(t, "solid", c.Frameworks[0].Label())
	assert.Equal(t, "TypeScript", c.Frameworks[0].Variants[0].Label())
	assert.Equal(t, "custom-solid", c.Frameworks[0].Variants[1].Label())
	assert.Equal(t, Delegated{Command: "npm create solid@latest TARGET_DIR"}, c.Frameworks[0].Variants[1].Source)

	_, err = LoadCatalog(`[[framework]`)
	assert.Error(t, err)
}
