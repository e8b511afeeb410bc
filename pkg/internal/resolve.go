package internal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Canyonmnmn/create-vite/pkg/internal/util"
)

// Selection is what the user asked for. It is only acted upon once Resolve
// returns without error.
type Selection struct {
	TargetDir   string
	Overwrite   bool
	PackageName string
	Framework   *Framework
	Variant     string
}

// Args are the values taken from the command line.
type Args struct {
	TargetDir string
	Template  string
}

// Resolver fills a Selection from Args, asking Prompter for anything missing.
type Resolver struct {
	Prompter         Prompter
	Catalog          *Catalog
	Cwd              string
	DefaultTargetDir string
}

// step is one question. applies decides from the partial selection whether
// the question is asked at all.
type step struct {
	name    string
	applies func(Selection) (bool, error)
	ask     func(context.Context, Selection) (Selection, error)
}

// Resolve runs every applicable step in order. A *CancelledError is returned
// when the user cancels any of them.
func (r *Resolver) Resolve(ctx context.Context, args Args) (Selection, error) {
	argTargetDir := util.NormalizeTargetPath(args.TargetDir)
	sel := Selection{TargetDir: r.orDefault(argTargetDir)}

	for _, s := range r.steps(argTargetDir, args.Template) {
		ok, err := s.applies(sel)
		if err != nil {
			return Selection{}, fmt.Errorf("%s: %w", s.name, err)
		}
		if !ok {
			continue
		}
		sel, err = s.ask(ctx, sel)
		if errors.Is(err, ErrPromptAborted) {
			return Selection{}, cancelled()
		}
		if err != nil {
			return Selection{}, err
		}
	}
	return sel, nil
}

// ProjectName is the target directory name, or the working directory name
// when scaffolding in place.
func (r *Resolver) ProjectName(sel Selection) string {
	return ProjectName(r.Cwd, sel.TargetDir)
}

// ProjectName is the base name given to a project in targetDir.
func ProjectName(cwd, targetDir string) string {
	if targetDir == "." {
		return filepath.Base(cwd)
	}
	return targetDir
}

// Root resolves targetDir against cwd.
func Root(cwd, targetDir string) string {
	if filepath.IsAbs(targetDir) {
		return filepath.Clean(targetDir)
	}
	return filepath.Join(cwd, targetDir)
}

func (r *Resolver) orDefault(targetDir string) string {
	if targetDir != "" {
		return targetDir
	}
	if r.DefaultTargetDir != "" {
		return r.DefaultTargetDir
	}
	return util.DefaultPackageName
}

func (r *Resolver) steps(argTargetDir, argTemplate string) []step {
	return []step{
		{
			name:    "project name",
			applies: func(Selection) (bool, error) { return argTargetDir == "", nil },
			ask:     r.askProjectName,
		},
		{
			name:    "overwrite",
			applies: r.targetBlocked,
			ask:     r.askOverwrite,
		},
		{
			name: "package name",
			applies: func(sel Selection) (bool, error) {
				return !util.IsValidPackageName(r.ProjectName(sel)), nil
			},
			ask: r.askPackageName,
		},
		{
			name: "framework",
			applies: func(Selection) (bool, error) {
				return argTemplate == "" || !r.Catalog.HasTemplate(argTemplate), nil
			},
			ask: func(ctx context.Context, sel Selection) (Selection, error) {
				return r.askFramework(ctx, sel, argTemplate)
			},
		},
		{
			name: "variant",
			applies: func(sel Selection) (bool, error) {
				return sel.Framework != nil && len(sel.Framework.Variants) > 0, nil
			},
			ask: r.askVariant,
		},
	}
}

func (r *Resolver) askProjectName(ctx context.Context, sel Selection) (Selection, error) {
	answer, err := r.Prompter.Input(ctx, InputConfig{
		Message: "Project name:",
		Default: r.orDefault(""),
	})
	if err != nil {
		return sel, err
	}
	sel.TargetDir = r.orDefault(util.NormalizeTargetPath(answer))
	return sel, nil
}

func (r *Resolver) targetBlocked(sel Selection) (bool, error) {
	root := Root(r.Cwd, sel.TargetDir)
	exists, err := Exists(root)
	if err != nil || !exists {
		return false, err
	}
	empty, err := IsEmpty(root)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func (r *Resolver) askOverwrite(ctx context.Context, sel Selection) (Selection, error) {
	target := fmt.Sprintf(`Target directory "%s"`, sel.TargetDir)
	if sel.TargetDir == "." {
		target = "Current directory"
	}
	overwrite, err := r.Prompter.Confirm(ctx, ConfirmConfig{
		Message: target + " is not empty. Remove existing files and continue?",
	})
	if err != nil {
		return sel, err
	}
	if !overwrite {
		return sel, cancelled()
	}
	sel.Overwrite = true
	return sel, nil
}

// errInvalidPackageName is shown verbatim under the package name prompt.
var errInvalidPackageName = errors.New("Invalid package.json name") //nolint:stylecheck // user-facing prompt text

func validatePackageName(name string) error {
	if !util.IsValidPackageName(name) {
		return errInvalidPackageName
	}
	return nil
}

func (r *Resolver) askPackageName(ctx context.Context, sel Selection) (Selection, error) {
	cfg := InputConfig{
		Message:   "Package name:",
		Default:   util.ToValidPackageName(r.ProjectName(sel)),
		Validator: validatePackageName,
	}
	for {
		answer, err := r.Prompter.Input(ctx, cfg)
		if err != nil {
			return sel, err
		}
		if validatePackageName(answer) == nil {
			sel.PackageName = answer
			return sel, nil
		}
	}
}

func (r *Resolver) askFramework(ctx context.Context, sel Selection, argTemplate string) (Selection, error) {
	message := "Select a framework:"
	if argTemplate != "" {
		message = fmt.Sprintf(`"%s" isn't a valid template. Please choose from below: `, argTemplate)
	}
	options := make([]string, 0, len(r.Catalog.Frameworks))
	for _, f := range r.Catalog.Frameworks {
		options = append(options, f.Label())
	}
	i, err := r.Prompter.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: 0,
	})
	if err != nil {
		return sel, err
	}
	if i < 0 || i >= len(r.Catalog.Frameworks) {
		return sel, fmt.Errorf("framework choice %d out of range", i)
	}
	framework := r.Catalog.Frameworks[i]
	sel.Framework = &framework
	return sel, nil
}

func (r *Resolver) askVariant(ctx context.Context, sel Selection) (Selection, error) {
	variants := sel.Framework.Variants
	options := make([]string, 0, len(variants))
	for _, v := range variants {
		options = append(options, v.Label())
	}
	i, err := r.Prompter.Select(ctx, SelectConfig{
		Message: "Select a variant:",
		Options: options,
	})
	if err != nil {
		return sel, err
	}
	if i < 0 || i >= len(variants) {
		return sel, fmt.Errorf("variant choice %d out of range", i)
	}
	sel.Variant = variants[i].Name
	return sel, nil
}
