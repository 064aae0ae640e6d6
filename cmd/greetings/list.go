package greetings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/greetings/pkg/card"
	"github.com/arthur-debert/greetings/pkg/cobrax/topics"
	"github.com/arthur-debert/greetings/pkg/templates"
	"github.com/arthur-debert/greetings/pkg/types"
	"github.com/arthur-debert/greetings/pkg/ui"
)

type listEntry struct {
	Kind    types.Kind    `json:"kind"`
	Command string        `json:"command"`
	Styles  []types.Style `json:"styles"`
	Title   string        `json:"title"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, templates.Default())
		},
	}
}

func (a *app) runList(cmd *cobra.Command, store *templates.Store) error {
	var entries []listEntry
	for _, kind := range store.Kinds() {
		entries = append(entries, listEntry{
			Kind:    kind,
			Command: commandFor(kind),
			Styles:  store.Styles(kind),
			Title:   card.Title(kind, "NAME"),
		})
	}

	out := cmd.OutOrStdout()
	if a.output == ui.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	md := listMarkdown(entries)
	if a.output == ui.FormatTerminal {
		if rendered, err := topics.NewGlamourRenderer().Markdown(md); err == nil {
			_, err = fmt.Fprint(out, rendered)
			return err
		}
	}
	_, err := fmt.Fprint(out, md)
	return err
}

// commandFor returns the invocation that renders kind
func commandFor(kind types.Kind) string {
	if kind.IsMotivational() {
		return "greetings motivate --theme " + kind.Theme()
	}
	return "greetings " + kind.String()
}

func listMarkdown(entries []listEntry) string {
	var b strings.Builder
	b.WriteString("# Cards\n\n")
	b.WriteString(MsgListIntro + "\n\n")
	b.WriteString("| Kind | Command | Styles | Title |\n")
	b.WriteString("|------|---------|--------|-------|\n")
	for _, e := range entries {
		styles := make([]string, len(e.Styles))
		for i, s := range e.Styles {
			styles[i] = s.String()
		}
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n", e.Kind, e.Command, strings.Join(styles, ", "), e.Title)
	}
	return b.String()
}
