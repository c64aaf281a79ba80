package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a document",
	}

	cmd.AddCommand(
		newExportJSONCmd(app),
		newExportDocxCmd(app),
	)

	return cmd
}

func newExportJSONCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "json <doc>",
		Short: "Export the document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			if out == "" {
				return app.Documents.ExportJSON(p, os.Stdout)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			if err := app.Documents.ExportJSON(p, f); err != nil {
				return err
			}
			fmt.Printf("Exported %s to %s\n", p.Title, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when omitted)")

	return cmd
}

func newExportDocxCmd(app *App) *cobra.Command {
	var template, out string

	cmd := &cobra.Command{
		Use:   "docx <doc>",
		Short: "Merge the document into a .docx template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openDocument(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			if out == "" {
				base := p.Title
				if base == "" {
					base = "programme"
				}
				out = base + filepath.Ext(template)
			}
			if err := app.Documents.ExportDocx(p, template, out); err != nil {
				return err
			}
			fmt.Printf("Merged %s into %s\n", p.Title, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "Template file with ${KEY} placeholders")
	cmd.Flags().StringVar(&out, "out", "", "Output file")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
