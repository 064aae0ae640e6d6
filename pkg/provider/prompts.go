package provider

import (
	"fmt"

	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/types"
)

const artRules = `You are an ASCII artist. RULES:
1) Use ONLY: * / \ | _ - + [ ] ( ) o O @ # = ~ ^ . space and letters
2) Use ANSI colors: \033[32m=green \033[33m=yellow \033[31m=red \033[34m=blue \033[0m=reset
3) NO unicode, NO box-drawing chars, NO emojis, NO markdown, NO code blocks
4) %s
5) Output ONLY the raw ASCII art, nothing else`

const userPrompt = `Create %s ASCII art with the following theme:
%s

Include the recipient's name: %s
Make it %s!`

// occasion describes a kind to the generator
type occasion struct {
	// noun names the occasion inside the user instruction
	noun string
	// mood closes the user instruction
	mood string
	// themes are used when no theme override is set
	themes map[types.Style]string
}

var occasions = map[types.Kind]occasion{
	types.KindBirthday: {
		noun: "birthday",
		mood: "joyful and celebratory",
		themes: map[types.Style]string{
			types.StyleBanner: "A large birthday cake with lit candles, balloons floating around it and confetti in the air.",
			types.StyleSmall:  "A small birthday cake with three candles and a balloon.",
			types.StyleSimple: "A cheerful birthday wish with party emojis.",
		},
	},
	types.KindGeneral: {
		noun: "friendly greeting",
		mood: "warm and welcoming",
		themes: map[types.Style]string{
			types.StyleBanner: "A big smiling sun over rolling hills with a waving stick figure.",
			types.StyleSmall:  "A small smiling face waving hello.",
			types.StyleSimple: "A warm hello with friendly emojis.",
		},
	},
	types.KindHoliday: {
		noun: "Christmas",
		mood: "festive and cheerful",
		themes: map[types.Style]string{
			types.StyleBanner: "A large Christmas tree with a bright star, decorated branches with ornaments, a trunk, and several wrapped presents at the base.",
			types.StyleSmall:  "A small Christmas tree with a star on top, ornaments, trunk, and gift boxes underneath.",
			types.StyleSimple: "A cheerful Christmas greeting with festive emojis.",
		},
	},
	types.KindMotivateMonday: {
		noun: "motivational Monday",
		mood: "energizing and upbeat",
		themes: map[types.Style]string{
			types.StyleBanner: "A sunrise over a city skyline with a flexed arm, ready to take on the week.",
			types.StyleSmall:  "A steaming mug next to a calendar page that says MONDAY.",
			types.StyleSimple: "An upbeat start-of-the-week cheer with energetic emojis.",
		},
	},
	types.KindMotivateKeepGoing: {
		noun: "keep-going encouragement",
		mood: "determined and encouraging",
		themes: map[types.Style]string{
			types.StyleBanner: "A winding mountain path with a runner halfway up and a flag on the summit.",
			types.StyleSmall:  "A small mountain with a flag on top.",
			types.StyleSimple: "A short push to keep going with running emojis.",
		},
	},
	types.KindMotivateYouGotThis: {
		noun: "you-got-this encouragement",
		mood: "confident and empowering",
		themes: map[types.Style]string{
			types.StyleBanner: "A stick figure with arms raised in victory on a podium under a shower of stars.",
			types.StyleSmall:  "A stick figure cheering with arms up.",
			types.StyleSimple: "A confident cheer with star and fist emojis.",
		},
	},
	types.KindMotivateDeadline: {
		noun: "deadline pep talk",
		mood: "focused and reassuring",
		themes: map[types.Style]string{
			types.StyleBanner: "A rocket lifting off next to a big clock close to midnight.",
			types.StyleSmall:  "A round alarm clock with its hands near twelve.",
			types.StyleSimple: "A focused deadline cheer with clock and rocket emojis.",
		},
	},
	types.KindMotivateCoffee: {
		noun: "coffee break",
		mood: "cozy and energizing",
		themes: map[types.Style]string{
			types.StyleBanner: "A large steaming coffee cup with swirling steam and a saucer with a cookie.",
			types.StyleSmall:  "A small steaming coffee mug.",
			types.StyleSimple: "A cozy coffee cheer with coffee emojis.",
		},
	},
}

// styleLimits is rule 4 of the art rules for each multi-line style
var styleLimits = map[types.Style]string{
	types.StyleBanner: "Max 60 chars wide, exactly 12 lines tall",
	types.StyleSmall:  "Max 40 chars wide, 8-12 lines tall",
}

func lookupOccasion(kind types.Kind) (occasion, error) {
	occ, ok := occasions[kind]
	if !ok {
		return occasion{}, errors.Newf(errors.ErrUnknownKind, "no remote prompts for kind %s", kind).
			WithDetail("kind", kind.String())
	}
	return occ, nil
}

// SystemPrompt returns the instruction that constrains the generator's
// output format for a style
func SystemPrompt(kind types.Kind, style types.Style) (string, error) {
	occ, err := lookupOccasion(kind)
	if err != nil {
		return "", err
	}
	switch style {
	case types.StyleBanner, types.StyleSmall:
		return fmt.Sprintf(artRules, styleLimits[style]), nil
	case types.StyleSimple:
		return fmt.Sprintf("Output a single line %s greeting with emojis. Keep it short. No explanations.", occ.noun), nil
	}
	return "", errors.Newf(errors.ErrUnknownStyle, "no remote prompts for style %s", style).
		WithDetail("style", style.String())
}

// UserPrompt returns the creative instruction. An empty theme selects the
// default theme for the (kind, style) pair.
func UserPrompt(kind types.Kind, style types.Style, name, theme string) (string, error) {
	occ, err := lookupOccasion(kind)
	if err != nil {
		return "", err
	}
	if theme == "" {
		theme = occ.themes[style]
	}
	if theme == "" {
		return "", errors.Newf(errors.ErrUnknownStyle, "no default theme for %s/%s", kind, style).
			WithDetail("style", style.String())
	}
	return fmt.Sprintf(userPrompt, occ.noun, theme, name, occ.mood), nil
}
