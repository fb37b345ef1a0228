package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/hiveprep/pkg/settings"
)

func init() {
	rootCmd.AddCommand(newSettingsCmd())
}

func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "List the built-in settings profile",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error {
			return runSettings(cmd.OutOrStdout())
		},
	}
}

func runSettings(out io.Writer) error {
	heading := color.New(color.FgCyan, color.Bold)
	for _, s := range settings.DefaultProfile() {
		heading.Fprintf(out, "%s\n", s.Path)
		for _, name := range s.ValueNames() {
			v := s.Values[name]
			fmt.Fprintf(out, "  %-45s %-13s %s\n", name, v.Kind, v.Display())
		}
		fmt.Fprintln(out)
	}
	return nil
}
