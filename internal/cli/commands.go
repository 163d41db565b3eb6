package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/export"
	"github.com/youruser/cardforge/internal/generator"
	"github.com/youruser/cardforge/internal/layout"
	"github.com/youruser/cardforge/internal/style"
	"github.com/youruser/cardforge/internal/util"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		contact cards.Contact
		sf      styleFlags
		logo    string
		logoURL string
		outDir  string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, st := sf.resolve(a.cfg.Render)
			art, err := a.gen.Generate(generator.Request{
				Contact:  contact,
				Style:    st,
				Format:   format,
				LogoPath: logo,
				LogoURL:  logoURL,
			})
			if err != nil {
				return err
			}
			path, err := writeFile(outDir, art.Filename, art.Data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&contact.Name, "name", "", "full name")
	f.StringVar(&contact.JobTitle, "job-title", "", "job title")
	f.StringVar(&contact.Company, "company", "", "company")
	f.StringVar(&contact.Email, "email", "", "email address")
	f.StringVar(&contact.Phone, "phone", "", "phone number")
	f.StringVar(&contact.Website, "website", "", "website")
	f.StringVar(&contact.Address, "address", "", "postal address")
	f.StringVar(&logo, "logo", "", "logo image file")
	f.StringVar(&logoURL, "logo-url", "", "logo image URL")
	f.StringVarP(&outDir, "out", "o", ".", "output directory")
	sf.register(cmd)
	return cmd
}

func newBatchCommand(a *app) *cobra.Command {
	var (
		sf      styleFlags
		workers int
		outDir  string
	)
	cmd := &cobra.Command{
		Use:   "batch <file.csv>",
		Short: "Render every row of a CSV into a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := cards.LoadRowsFromFile(args[0])
			if err != nil {
				return err
			}
			format, st := sf.resolve(a.cfg.Render)
			res, err := a.driver(workers).Render(cmd.Context(), rows, st, format)
			if err != nil {
				return err
			}
			path, err := writeFile(outDir, res.Filename, res.Archive)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d cards\n", path, len(res.Members))
			for _, f := range res.Failures {
				fmt.Fprintf(out, "skipped %v\n", f)
			}
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel renders (default from config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	return cmd
}

func newCSVTemplateCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "csv-template",
		Short: "Write a CSV template for batch input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" || out == "-" {
				return cards.WriteTemplate(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := cards.WriteTemplate(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write (default stdout)")
	return cmd
}

func newCatalogCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List templates, palettes, fonts and formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := a.gen.Catalog()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "TEMPLATES")
			for _, id := range layout.Templates() {
				fmt.Fprintf(w, "  %s\n", id)
			}
			fmt.Fprintln(w, "PALETTES")
			for _, id := range cat.PaletteIDs() {
				p, _ := cat.Palette(id)
				fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", id, p.Hex(style.Primary), p.Hex(style.Secondary), p.Hex(style.Accent))
			}
			fmt.Fprintln(w, "FONTS")
			for _, r := range style.FontRoles() {
				fmt.Fprintf(w, "  %s\t%s\n", r, cat.FontSource(r))
			}
			fmt.Fprintln(w, "FORMATS")
			for _, f := range export.Formats() {
				fmt.Fprintf(w, "  %s\n", f)
			}
			return w.Flush()
		},
	}
}

func writeFile(dir, name string, data []byte) (string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, data, 0o644)
}
