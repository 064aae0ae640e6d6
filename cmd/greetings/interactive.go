package greetings

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/greetings/pkg/card"
	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/types"
)

// prompter asks the wizard's questions
type prompter interface {
	Select(label string, options []string, def string) (string, error)
	Input(label, def string) (string, error)
	Confirm(label string, def bool) (bool, error)
}

// ptermPrompter prompts on the terminal
type ptermPrompter struct{}

func (ptermPrompter) Select(label string, options []string, def string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithOptions(options).WithDefaultOption(def).Show(label)
}

func (ptermPrompter) Input(label, def string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultValue(def).Show(label)
}

func (ptermPrompter) Confirm(label string, def bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(def).Show(label)
}

type choice[T any] struct {
	label string
	value T
}

func labels[T any](choices []choice[T]) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.label
	}
	return out
}

func pick[T any](p prompter, label string, choices []choice[T]) (T, error) {
	answer, err := p.Select(label, labels(choices), choices[0].label)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, errors.ErrInvalidInput, MsgErrWizard)
	}
	for _, c := range choices {
		if c.label == answer {
			return c.value, nil
		}
	}
	return choices[0].value, nil
}

var kindChoices = []choice[types.Kind]{
	{"🎂 Birthday", types.KindBirthday},
	{"👋 General Greeting", types.KindGeneral},
	{"🎄 Christmas", types.KindHoliday},
	{"💪 Motivation", types.KindMotivateMonday},
}

var styleChoices = []choice[types.Style]{
	{"🎨 Banner (large ASCII art)", types.StyleBanner},
	{"🎂 Small (compact design)", types.StyleSmall},
	{"✨ Simple (minimal text)", types.StyleSimple},
}

type action int

const (
	actionDisplay action = iota
	actionExport
	actionBoth
)

var actionChoices = []choice[action]{
	{MsgActionDisplay, actionDisplay},
	{MsgActionExport, actionExport},
	{MsgActionBoth, actionBoth},
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Short:   MsgInteractiveShort,
		Long:    MsgInteractiveLong,
		GroupID: "cards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.isTerminal() {
				return errors.New(errors.ErrInvalidInput, MsgErrInteractive)
			}
			return a.runInteractive(cmd)
		},
	}
}

// runInteractive asks for a card and produces it
func (a *app) runInteractive(cmd *cobra.Command) error {
	_ = a.renderer.RenderMessage("<Welcome>" + MsgWelcome + "</Welcome>")

	req, err := a.askCard()
	if err != nil {
		return err
	}
	if err := a.runCard(cmd, req); err != nil {
		return err
	}
	return a.renderer.RenderMessage(MsgThanks)
}

func (a *app) askCard() (cardRequest, error) {
	p := a.prompter

	kind, err := pick(p, MsgPromptKind, kindChoices)
	if err != nil {
		return cardRequest{}, err
	}
	if kind.IsMotivational() {
		var themes []choice[types.Kind]
		for _, theme := range types.MotivationThemes() {
			k, _ := types.MotivationKind(theme)
			themes = append(themes, choice[types.Kind]{theme, k})
		}
		if kind, err = pick(p, MsgPromptTheme, themes); err != nil {
			return cardRequest{}, err
		}
	}

	name, err := p.Input(MsgPromptName, MsgDefaultName)
	if err != nil {
		return cardRequest{}, errors.Wrap(err, errors.ErrInvalidInput, MsgErrWizard)
	}
	if strings.TrimSpace(name) == "" {
		name = MsgDefaultName
	}

	style, err := pick(p, MsgPromptStyle, styleChoices)
	if err != nil {
		return cardRequest{}, err
	}

	req := cardRequest{Kind: kind, Name: name, Style: style.String()}

	if kind == types.KindHoliday {
		if req.UseAI, err = p.Confirm(MsgPromptUseAI, false); err != nil {
			return cardRequest{}, errors.Wrap(err, errors.ErrInvalidInput, MsgErrWizard)
		}
		if req.UseAI {
			theme, err := p.Input(MsgPromptAITheme, "")
			if err != nil {
				return cardRequest{}, errors.Wrap(err, errors.ErrInvalidInput, MsgErrWizard)
			}
			req.Theme = strings.TrimSpace(theme)
		}
	}

	act, err := pick(p, MsgPromptAction, actionChoices)
	if err != nil {
		return cardRequest{}, err
	}
	req.Display = act != actionExport
	if act != actionDisplay {
		req.ExportPath = card.DefaultExportPath(a.cfg.Export.Dir, kind, name)
	}
	return req, nil
}
