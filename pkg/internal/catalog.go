package internal

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var catalogData string

// Source tells where a variant's project comes from. It is either
// LocalTemplate or Delegated.
type Source interface {
	isSource()
}

// LocalTemplate variants are materialized from the template directory of the
// same name.
type LocalTemplate struct{}

// Delegated variants are scaffolded by an external generator. Command holds
// TargetDirPlaceholder where the target directory goes.
type Delegated struct {
	Command string
}

func (LocalTemplate) isSource() {}
func (Delegated) isSource()     {}

// TargetDirPlaceholder is substituted with the target directory in delegated
// commands.
const TargetDirPlaceholder = "TARGET_DIR"

type Variant struct {
	Name    string
	Display string
	Color   Color
	Source  Source
}

// CustomCommand returns the delegated command template, if any.
func (v Variant) CustomCommand() (string, bool) {
	if d, ok := v.Source.(Delegated); ok {
		return d.Command, true
	}
	return "", false
}

// Label is the colored text shown in prompts.
func (v Variant) Label() string {
	return v.Color.Render(displayOr(v.Display, v.Name))
}

type Framework struct {
	Name     string
	Display  string
	Color    Color
	Variants []Variant
}

// Label is the colored text shown in prompts.
func (f Framework) Label() string {
	return f.Color.Render(displayOr(f.Display, f.Name))
}

func displayOr(display, name string) string {
	if display != "" {
		return display
	}
	return name
}

// Catalog is the read-only registry of frameworks and their variants.
type Catalog struct {
	Frameworks []Framework
	templates  []string
}

type catalogFile struct {
	Frameworks []struct {
		Name     string `toml:"name"`
		Display  string `toml:"display"`
		Color    string `toml:"color"`
		Variants []struct {
			Name          string `toml:"name"`
			Display       string `toml:"display"`
			Color         string `toml:"color"`
			CustomCommand string `toml:"custom_command"`
		} `toml:"variant"`
	} `toml:"framework"`
}

// DefaultCatalog decodes the embedded catalog. It panics if the embedded data
// is malformed.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(catalogData)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog decodes a TOML catalog document and validates it.
func LoadCatalog(data string) (*Catalog, error) {
	var file catalogFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("catalog does not match required format: %w", err)
	}

	frameworks := make([]Framework, 0, len(file.Frameworks))
	for _, f := range file.Frameworks {
		framework := Framework{
			Name:    f.Name,
			Display: f.Display,
			Color:   Color(f.Color),
		}
		for _, v := range f.Variants {
			variant := Variant{
				Name:    v.Name,
				Display: v.Display,
				Color:   Color(v.Color),
				Source:  LocalTemplate{},
			}
			if v.CustomCommand != "" {
				variant.Source = Delegated{Command: v.CustomCommand}
			}
			framework.Variants = append(framework.Variants, variant)
		}
		frameworks = append(frameworks, framework)
	}
	return NewCatalog(frameworks)
}

// NewCatalog builds a catalog from frameworks, rejecting unnamed entries,
// unknown colors and duplicate template names.
func NewCatalog(frameworks []Framework) (*Catalog, error) {
	c := &Catalog{Frameworks: frameworks}
	seen := map[string]bool{}
	add := func(name string) error {
		if seen[name] {
			return fmt.Errorf("catalog contains duplicate template: %s", name)
		}
		seen[name] = true
		c.templates = append(c.templates, name)
		return nil
	}

	for _, f := range frameworks {
		if f.Name == "" {
			return nil, fmt.Errorf("catalog contains a framework without a name")
		}
		if f.Color != "" && !f.Color.Known() {
			return nil, fmt.Errorf("framework %s has unknown color %q", f.Name, f.Color)
		}
		if len(f.Variants) == 0 {
			if err := add(f.Name); err != nil {
				return nil, err
			}
			continue
		}
		for _, v := range f.Variants {
			if v.Name == "" {
				return nil, fmt.Errorf("framework %s contains a variant without a name", f.Name)
			}
			if v.Color != "" && !v.Color.Known() {
				return nil, fmt.Errorf("variant %s has unknown color %q", v.Name, v.Color)
			}
			if err := add(v.Name); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// TemplateNames lists every template in framework then variant order. A
// framework without variants contributes its own name.
func (c *Catalog) TemplateNames() []string {
	names := make([]string, len(c.templates))
	copy(names, c.templates)
	return names
}

// HasTemplate reports whether name is a known template.
func (c *Catalog) HasTemplate(name string) bool {
	for _, t := range c.templates {
		if t == name {
			return true
		}
	}
	return false
}

// FindVariant returns the first variant called name.
func (c *Catalog) FindVariant(name string) (Variant, bool) {
	for _, f := range c.Frameworks {
		for _, v := range f.Variants {
			if v.Name == name {
				return v, true
			}
		}
	}
	return Variant{}, false
}
