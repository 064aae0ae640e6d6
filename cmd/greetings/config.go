package greetings

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/greetings/pkg/config"
	"github.com/arthur-debert/greetings/pkg/ui/lipbalm"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
	}

	var (
		force bool
		path  string
	)
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       MsgConfigInitShort,
		Args:        cobra.NoArgs,
		Annotations: noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				target = config.UserConfigPath()
			}
			if err := config.WriteUserConfig(target, force); err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, lipbalm.Escape(target)))
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	initCmd.Flags().StringVar(&path, "path", "", MsgFlagPath)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shown, err := a.cfg.Show()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), shown)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
