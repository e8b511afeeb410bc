// Package createvite scaffolds new Vite projects. A project is either copied
// from a local template directory, with its package.json renamed, or handed
// over to an external generator.
package createvite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Canyonmnmn/create-vite/pkg/internal"
	"github.com/Canyonmnmn/create-vite/pkg/internal/util"
)

// CreateVite holds everything a scaffold run depends on. Command line values
// go in TargetDir and Template; everything missing is asked through Prompter.
type CreateVite struct {
	TargetDir        string
	Template         string
	Templates        string
	UserAgent        string
	Cwd              string
	DefaultTargetDir string
	Catalog          *internal.Catalog
	Prompter         internal.Prompter
	Runner           internal.Runner
	Out              io.Writer
	Logger           *log.Logger
}

// Result is how a run ended. main turns it into the process exit status.
type Result struct {
	ExitCode int
	Message  string
}

type Option func(*CreateVite)

func WithTargetDir(dir string) Option {
	return func(c *CreateVite) {
		c.TargetDir = dir
	}
}

func WithTemplate(template string) Option {
	return func(c *CreateVite) {
		c.Template = template
	}
}

// WithTemplates sets the template source: a directory or a git URL.
func WithTemplates(location string) Option {
	return func(c *CreateVite) {
		c.Templates = location
	}
}

// WithUserAgent sets the npm_config_user_agent value of the invoking package
// manager.
func WithUserAgent(userAgent string) Option {
	return func(c *CreateVite) {
		c.UserAgent = userAgent
	}
}

func WithCwd(cwd string) Option {
	return func(c *CreateVite) {
		c.Cwd = cwd
	}
}

func WithCatalog(catalog *internal.Catalog) Option {
	return func(c *CreateVite) {
		c.Catalog = catalog
	}
}

func WithPrompter(p internal.Prompter) Option {
	return func(c *CreateVite) {
		c.Prompter = p
	}
}

func WithRunner(r internal.Runner) Option {
	return func(c *CreateVite) {
		c.Runner = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(c *CreateVite) {
		c.Out = w
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *CreateVite) {
		c.Logger = l
	}
}

// NewCreateVite creates a CreateVite with the given options.
func NewCreateVite(opts ...Option) CreateVite {
	c := CreateVite{
		Templates:        "templates",
		DefaultTargetDir: util.DefaultPackageName,
		Out:              os.Stdout,
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.Catalog == nil {
		c.Catalog = internal.DefaultCatalog()
	}
	if c.Prompter == nil {
		c.Prompter = &internal.SurveyPrompter{}
	}
	if c.Runner == nil {
		c.Runner = internal.ExecRunner{}
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(os.Stderr, log.Options{})
	}
	return c
}

// Scaffold resolves the selection, prepares the target directory and creates
// the project. Cancellation is reported through Result, not as an error.
func (c CreateVite) Scaffold(ctx context.Context) (Result, error) {
	cwd := c.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Result{}, err
		}
		cwd = wd
	}

	resolver := &internal.Resolver{
		Prompter:         c.Prompter,
		Catalog:          c.Catalog,
		Cwd:              cwd,
		DefaultTargetDir: c.DefaultTargetDir,
	}
	sel, err := resolver.Resolve(ctx, internal.Args{TargetDir: c.TargetDir, Template: c.Template})
	var cancelled *internal.CancelledError
	if errors.As(err, &cancelled) {
		return Result{Message: cancelled.Message}, nil
	}
	if err != nil {
		return Result{}, err
	}

	template := sel.Variant
	if template == "" && sel.Framework != nil {
		template = sel.Framework.Name
	}
	if template == "" {
		template = c.Template
	}
	baseTemplate, isReactSwc := internal.StripSwc(template)

	root := internal.Root(cwd, sel.TargetDir)
	if err := prepare(root, sel.Overwrite); err != nil {
		return Result{}, err
	}

	pm := internal.DetectPackageManager(c.UserAgent)
	c.Logger.Debug("resolved selection", "target", sel.TargetDir, "template", template, "packageManager", pm.Name)

	if variant, ok := c.Catalog.FindVariant(template); ok {
		if command, delegated := variant.CustomCommand(); delegated {
			return c.delegate(ctx, pm, command, sel.TargetDir)
		}
	}

	fmt.Fprintf(c.Out, "\nScaffolding project in %s...\n", root)

	source, err := internal.OpenTemplateSource(ctx, c.Templates)
	if err != nil {
		return Result{}, err
	}
	defer source.Close()

	packageName := sel.PackageName
	if packageName == "" {
		packageName = resolver.ProjectName(sel)
	}
	if err := c.materialize(source.Dir(baseTemplate), root, packageName); err != nil {
		return Result{}, fmt.Errorf("failed to create project from template %s: %w", baseTemplate, err)
	}

	if isReactSwc {
		if err := internal.SetupReactSwc(root, strings.HasSuffix(baseTemplate, "-ts")); err != nil {
			return Result{}, err
		}
	}

	c.printNextSteps(cwd, root, pm)
	return Result{}, nil
}

func prepare(root string, overwrite bool) error {
	if overwrite {
		return internal.EmptyDir(root)
	}
	exists, err := internal.Exists(root)
	if err != nil || exists {
		return err
	}
	return os.MkdirAll(root, 0755)
}

func (c CreateVite) delegate(ctx context.Context, pm internal.PackageManager, command string, targetDir string) (Result, error) {
	name, args, err := pm.BuildCustomCommand(command, targetDir)
	if err != nil {
		return Result{}, err
	}
	c.Logger.Debug("running delegated command", "command", name, "args", args)
	code, err := c.Runner.Run(ctx, name, args)
	if err != nil {
		// A generator that never started has no exit status.
		c.Logger.Error("failed to run delegated command", "command", name, "err", err)
		return Result{}, nil
	}
	return Result{ExitCode: code}, nil
}

func (c CreateVite) materialize(templateDir string, root string, packageName string) error {
	entries, err := os.ReadDir(templateDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Name() == internal.ManifestFile {
			continue
		}
		dest := filepath.Join(root, internal.OutputName(entry.Name()))
		if err := internal.Copy(filepath.Join(templateDir, entry.Name()), dest); err != nil {
			return err
		}
		c.Logger.Debugf("    %s  %s", "create", dest)
	}

	data, err := os.ReadFile(filepath.Join(templateDir, internal.ManifestFile))
	if err != nil {
		return err
	}
	manifest, err := internal.ParseManifest(data)
	if err != nil {
		return err
	}
	if err := manifest.SetName(packageName); err != nil {
		return err
	}
	out, err := manifest.Bytes()
	if err != nil {
		return err
	}
	dest := filepath.Join(root, internal.ManifestFile)
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return err
	}
	c.Logger.Debugf("    %s  %s", "create", dest)
	return nil
}

func (c CreateVite) printNextSteps(cwd string, root string, pm internal.PackageManager) {
	fmt.Fprint(c.Out, "\nDone. Now run:\n\n")
	if root != filepath.Clean(cwd) {
		rel, err := filepath.Rel(cwd, root)
		if err != nil {
			rel = root
		}
		if strings.Contains(rel, " ") {
			rel = `"` + rel + `"`
		}
		fmt.Fprintf(c.Out, "  cd %s\n", rel)
	}
	for _, step := range pm.NextSteps() {
		fmt.Fprintf(c.Out, "  %s\n", step)
	}
	fmt.Fprintln(c.Out)
}
