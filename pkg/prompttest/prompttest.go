// Package prompttest provides a scripted Prompter for tests.
package prompttest

import (
	"context"
	"fmt"

	"github.com/Canyonmnmn/create-vite/pkg/internal"
)

// Kind names the prompt type a question was asked with.
type Kind string

const (
	KindInput   Kind = "input"
	KindConfirm Kind = "confirm"
	KindSelect  Kind = "select"
)

// Answer is one scripted reply. An empty Input accepts the default and Abort
// simulates the user interrupting.
type Answer struct {
	Input   string
	Confirm bool
	Select  int
	Abort   bool
}

// Question records what was asked.
type Question struct {
	Kind    Kind
	Message string
	Default string
	Options []string
	// Rejected holds the validator error for an Input answer, if any.
	Rejected error
}

// Prompter replays Answers in order and records every Question.
type Prompter struct {
	Answers   []Answer
	Questions []Question
}

// New returns a Prompter replaying answers.
func New(answers ...Answer) *Prompter {
	return &Prompter{Answers: answers}
}

func (p *Prompter) next(q Question) (Answer, error) {
	p.Questions = append(p.Questions, q)
	if len(p.Answers) == 0 {
		return Answer{}, fmt.Errorf("unexpected %s prompt %q", q.Kind, q.Message)
	}
	a := p.Answers[0]
	p.Answers = p.Answers[1:]
	if a.Abort {
		return a, internal.ErrPromptAborted
	}
	return a, nil
}

func (p *Prompter) Input(ctx context.Context, cfg internal.InputConfig) (string, error) {
	for {
		a, err := p.next(Question{Kind: KindInput, Message: cfg.Message, Default: cfg.Default})
		if err != nil {
			return "", err
		}
		value := a.Input
		if value == "" {
			value = cfg.Default
		}
		if cfg.Validator != nil {
			if verr := cfg.Validator(value); verr != nil {
				p.Questions[len(p.Questions)-1].Rejected = verr
				continue
			}
		}
		return value, nil
	}
}

func (p *Prompter) Confirm(ctx context.Context, cfg internal.ConfirmConfig) (bool, error) {
	a, err := p.next(Question{Kind: KindConfirm, Message: cfg.Message})
	if err != nil {
		return false, err
	}
	return a.Confirm, nil
}

func (p *Prompter) Select(ctx context.Context, cfg internal.SelectConfig) (int, error) {
	a, err := p.next(Question{Kind: KindSelect, Message: cfg.Message, Options: cfg.Options})
	if err != nil {
		return 0, err
	}
	return a.Select, nil
}

// Messages lists the message of every question asked.
func (p *Prompter) Messages() []string {
	var out []string
	for _, q := range p.Questions {
		out = append(out, q.Message)
	}
	return out
}
