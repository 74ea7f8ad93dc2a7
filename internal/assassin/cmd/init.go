package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/assassin/pkg/common"
)

// assassin init
func Init() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the assassin directory and default config",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`init creates the ~/assassin directory along with a
			default assassin.yaml config file. Existing files are left
			as they are.

			Put the participants in ~/assassin/names.txt, one name per
			line, to play without passing a names file every time.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := common.Init(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mInitialized\x1b[0m %s\n", common.Directory)
			return nil
		},
	}
}
