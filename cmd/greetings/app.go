package greetings

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/greetings/pkg/ai"
	"github.com/arthur-debert/greetings/pkg/config"
	"github.com/arthur-debert/greetings/pkg/ui"
)

// annotationNoConfig marks commands that run without loading the config
const annotationNoConfig = "greetings/no-config"

var noConfig = map[string]string{annotationNoConfig: "true"}

// app is the state shared by every command of one root
type app struct {
	verbosity  int
	format     string
	configFile string

	cfg      *config.Config
	output   ui.Format
	renderer ui.Renderer

	newGenerator func(config.Remote) ai.Generator
	prompter     prompter
	isTerminal   func() bool
}

func newApp() *app {
	return &app{
		newGenerator: ai.New,
		prompter:     ptermPrompter{},
		isTerminal:   interactiveTerminal,
	}
}

func interactiveTerminal() bool {
	in := os.Stdin.Fd()
	return stdoutIsTerminal() && (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in))
}

// setup loads the configuration and picks the output renderer
func (a *app) setup(cmd *cobra.Command) error {
	formatName := a.format
	if cmd.Annotations[annotationNoConfig] == "" {
		cfg, err := config.Load(config.Options{ConfigFile: a.configFile})
		if err != nil {
			return err
		}
		a.cfg = cfg
		if formatName == "" {
			formatName = cfg.Output.Format
		}
	}

	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return err
	}
	a.output = ui.ResolveFormat(format, cmd.OutOrStdout())
	a.renderer, err = ui.NewRenderer(a.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if a.output == ui.FormatTerminal {
		pterm.EnableStyling()
	} else {
		pterm.DisableStyling()
	}
	return nil
}

// reportError renders err on w, as JSON when JSON output was asked for
func (a *app) reportError(w io.Writer, err error) {
	format := ui.ResolveFormat(ui.FormatAuto, w)
	if a.output == ui.FormatJSON {
		format = ui.FormatJSON
	}
	r, rerr := ui.NewRenderer(format, w)
	if rerr != nil {
		return
	}
	_ = r.RenderError(err)
}

func (a *app) warn(cmd *cobra.Command, msg string) {
	pterm.Warning.WithWriter(cmd.ErrOrStderr()).Println(msg)
}

func (a *app) success(cmd *cobra.Command, msg string) {
	pterm.Success.WithWriter(cmd.ErrOrStderr()).Println(msg)
}

// withSpinner runs fn under a spinner on stderr when that is a terminal
// and rich output is on
func (a *app) withSpinner(cmd *cobra.Command, msg string, fn func() error) error {
	w := cmd.ErrOrStderr()
	f, ok := w.(*os.File)
	if a.output != ui.FormatTerminal || !ok || !isatty.IsTerminal(f.Fd()) {
		return fn()
	}

	spinner, err := pterm.DefaultSpinner.WithWriter(w).WithRemoveWhenDone(true).Start(msg)
	if err != nil {
		return fn()
	}
	defer func() { _ = spinner.Stop() }()
	return fn()
}
