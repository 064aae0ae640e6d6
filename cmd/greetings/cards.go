package greetings

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/greetings/pkg/card"
	"github.com/arthur-debert/greetings/pkg/dispatcher"
	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/logging"
	"github.com/arthur-debert/greetings/pkg/provider"
	"github.com/arthur-debert/greetings/pkg/sanitize"
	"github.com/arthur-debert/greetings/pkg/types"
	"github.com/arthur-debert/greetings/pkg/ui"
	"github.com/arthur-debert/greetings/pkg/ui/terminal"
)

// cardRequest is one card to produce, from flags or from the wizard
type cardRequest struct {
	Kind       types.Kind
	Name       string
	Style      string
	UseAI      bool
	Theme      string
	Animate    bool
	Display    bool
	ExportPath string
}

// cardFlags are the flags every card command shares
type cardFlags struct {
	name   string
	style  string
	export string
}

func (f *cardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", MsgFlagName)
	cmd.Flags().StringVarP(&f.style, "style", "s", types.DefaultStyle.String(), MsgFlagStyle)
	cmd.Flags().StringVarP(&f.export, "export", "e", "", MsgFlagExport)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagFilename("export", "txt")
	_ = cmd.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return types.StyleNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

func (f *cardFlags) request(kind types.Kind) cardRequest {
	return cardRequest{
		Kind:       kind,
		Name:       f.name,
		Style:      f.style,
		Display:    true,
		ExportPath: f.export,
	}
}

func newBirthdayCmd(a *app) *cobra.Command {
	var (
		flags   cardFlags
		animate bool
	)
	cmd := &cobra.Command{
		Use:     "birthday",
		Short:   MsgBirthdayShort,
		Example: MsgCardExample,
		GroupID: "cards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request(types.KindBirthday)
			req.Animate = animate
			return a.runCard(cmd, req)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&animate, "animate", false, MsgFlagAnimate)
	return cmd
}

func newGeneralCmd(a *app) *cobra.Command {
	var flags cardFlags
	cmd := &cobra.Command{
		Use:     "general",
		Short:   MsgGeneralShort,
		Example: MsgCardExample,
		GroupID: "cards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCard(cmd, flags.request(types.KindGeneral))
		},
	}
	flags.register(cmd)
	return cmd
}

func newHolidayCmd(a *app) *cobra.Command {
	var (
		flags    cardFlags
		useAI    bool
		aiPrompt string
	)
	cmd := &cobra.Command{
		Use:     "holiday",
		Aliases: []string{"xmas", "christmas"},
		Short:   MsgHolidayShort,
		Long:    MsgHolidayLong,
		Example: MsgHolidayExample,
		GroupID: "cards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request(types.KindHoliday)
			req.UseAI = useAI
			req.Theme = aiPrompt
			return a.runCard(cmd, req)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&useAI, "use-ai", false, MsgFlagUseAI)
	cmd.Flags().StringVar(&aiPrompt, "ai-prompt", "", MsgFlagAIPrompt)
	return cmd
}

func newMotivateCmd(a *app) *cobra.Command {
	var (
		flags cardFlags
		theme string
	)
	cmd := &cobra.Command{
		Use:     "motivate",
		Short:   MsgMotivateShort,
		Long:    MsgMotivateLong,
		GroupID: "cards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := types.MotivationKind(theme)
			if err != nil {
				return err
			}
			return a.runCard(cmd, flags.request(kind))
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&theme, "theme", "t", "monday", MsgFlagTheme)
	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return types.MotivationThemes(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// runCard produces, shows and exports one card
func (a *app) runCard(cmd *cobra.Command, req cardRequest) error {
	if sanitize.Name(req.Name) == "" {
		return errors.New(errors.ErrInvalidInput, MsgErrEmptyName).WithDetail("name", req.Name)
	}
	style, err := types.ParseStyle(req.Style)
	if err != nil {
		return err
	}

	source := types.SourceLocal
	if req.UseAI {
		source = types.SourceRemote
	}

	var fallback error
	opts := provider.RemoteOptions{
		Theme:      req.Theme,
		OnFallback: func(err error) { fallback = err },
	}
	d := dispatcher.New(nil, opts)
	if req.UseAI {
		d.Generator = a.newGenerator(a.cfg.Remote)
	}

	p, err := d.Select(source, req.Kind)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	genCtx, cancel := context.WithTimeout(ctx, a.cfg.Remote.Timeout)
	defer cancel()

	status := MsgGenerating
	if req.UseAI {
		status = MsgGeneratingAI
	}
	var c types.Card
	err = a.withSpinner(cmd, status, func() error {
		var cardErr error
		c, cardErr = p.Card(genCtx, req.Name, style)
		return cardErr
	})
	if err != nil {
		return err
	}
	if fallback != nil {
		a.warn(cmd, MsgFallbackNotice)
	}

	logger := logging.WithFields(map[string]interface{}{
		"component": "cli.card",
		"kind":      req.Kind.String(),
		"style":     style.String(),
		"source":    c.Source.String(),
	})
	logger.Info().Msg("Card ready")

	content := card.Compose(req.Kind, style, req.Name, c, card.Options{Color: a.output == ui.FormatTerminal})

	if req.Display {
		if err := a.display(ctx, cmd, content, req.Animate); err != nil {
			return err
		}
	}
	if req.ExportPath != "" {
		if err := card.Export(req.ExportPath, content); err != nil {
			return err
		}
		a.success(cmd, fmt.Sprintf(MsgExportedFormat, req.ExportPath))
	}
	return nil
}

// display renders the card, revealing it line by line when animated.
// JSON output is never animated.
func (a *app) display(ctx context.Context, cmd *cobra.Command, content card.Content, animate bool) error {
	if !animate || a.output == ui.FormatJSON {
		return a.renderer.RenderCard(content)
	}

	text := content.Plain().Text()
	if a.output == ui.FormatTerminal {
		tr, err := terminal.New(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if text, err = tr.Panel(content); err != nil {
			return err
		}
	}
	return card.Animate(ctx, cmd.OutOrStdout(), text, a.cfg.Output.AnimateDelay)
}
