package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <entity>",
	Short: "Write every record of an entity to an Excel workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := lookup(args[0])
		if err != nil {
			return err
		}
		buf, filename, err := cur.services.Export.Export(cmd.Context(), e)
		if err != nil {
			return err
		}
		if exportOut != "" {
			filename = exportOut
		}
		if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: <entities>.xlsx)")
}
