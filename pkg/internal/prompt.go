package internal

import (
	"context"
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

type InputConfig struct {
	Message   string
	Default   string
	Validator func(string) error
}

type ConfirmConfig struct {
	Message string
	Default bool
}

type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
}

// Prompter asks one question at a time. Implementations return
// ErrPromptAborted when the user cancels.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

// SurveyPrompter asks questions on a terminal. A nil Stdio uses the process
// streams.
type SurveyPrompter struct {
	Stdio *terminal.Stdio
}

func (p *SurveyPrompter) opts(extra ...survey.AskOpt) []survey.AskOpt {
	if p.Stdio != nil {
		extra = append(extra, survey.WithStdio(p.Stdio.In, p.Stdio.Out, p.Stdio.Err))
	}
	return extra
}

func (p *SurveyPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out, p.opts(opts...)...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (p *SurveyPrompter) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out, p.opts()...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (p *SurveyPrompter) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out int
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out, p.opts()...); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrPromptAborted
	}
	return err
}
