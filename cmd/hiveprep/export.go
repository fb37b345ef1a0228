package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hiveprep/internal/regfile"
	"github.com/joshuapare/hiveprep/pkg/settings"
)

var (
	exportOutput   string
	exportEncoding string
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "Output file, or - for stdout")
	cmd.Flags().StringVar(&exportEncoding, "encoding", regfile.EncodingUTF8, "Output encoding (UTF-8, UTF-16LE)")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the settings profile as a .reg file",
		Long:  `The export command renders the built-in profile in Windows Registry
Editor Version 5.00 format, addressed under HKEY_USERS\<alias>. UTF-16LE
output carries a byte order mark, matching what regedit itself exports.

Example:
  hiveprep export
  hiveprep export -o profile.reg --encoding UTF-16LE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout())
		},
	}
}

func runExport(out io.Writer) error {
	data, err := regfile.Export(settings.DefaultProfile(), regfile.Options{
		Root:     `HKEY_USERS\` + alias,
		Encoding: exportEncoding,
		WithBOM:  strings.EqualFold(exportEncoding, regfile.EncodingUTF16LE),
	})
	if err != nil {
		return err
	}

	if exportOutput == "-" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	log.WithField("output", exportOutput).Info("profile exported")
	return nil
}
