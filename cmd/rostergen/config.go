package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/rostergen/pkg/config"
	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

const defaultConfigFile = "rostergen.yaml"

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a YAML file",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return rerrors.New(rerrors.ErrorTypeFile, "config file already exists, use --force to replace it").
					WithDetail("path", path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing file")
	return cmd
}
