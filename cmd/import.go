/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/internal/ioeutils"
	"github.com/gnames/ncbitax/internal/ioimport"
	"github.com/gnames/ncbitax/internal/iometrics"
	"github.com/gnames/ncbitax/internal/iostore"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import NCBI Taxonomy records to the tag store",
		Long: `Import taxa that match an Entrez query into the tag store.

This command:
  1. Searches NCBI Taxonomy with ESearch, one page at a time
  2. Downloads full records of every page with EFetch
  3. Skips records whose scientific names contain digits or colons
  4. Saves accepted records as tags under {namespace}/taxonomy/ncbi
  5. Optionally adds canonical forms under {namespace}/taxonomy/gn

Tables are created if the store is empty. Importing again updates
existing objects.

Examples:
  ncbitax import
  ncbitax import -t "Primates[Subtree] AND species[Rank]" -p 500
  ncbitax import -t "Bos[Subtree]" -c -s postgres`,
		Aliases: []string{"populate"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(flagOptions(cmd))
			err := runImport(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	importCmd.Flags().StringP("term", "t", "",
		"Entrez query that selects taxa")
	importCmd.Flags().IntP("page-size", "p", 0,
		"number of records per request")
	importCmd.Flags().BoolP("with-canonical", "c", false,
		"add canonical forms of names generated by GNparser")
	addStoreFlags(importCmd)
	addRunFlags(importCmd)

	return importCmd
}

func runImport(cmd *cobra.Command) error {
	ctx, cancel := runContext()
	defer cancel()

	st, err := iostore.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	hasTables, err := st.HasTables(ctx)
	if err != nil {
		return err
	}
	if !hasTables {
		gn.Info("Tag store is empty, creating tables...")
		if err = st.CreateTables(ctx); err != nil {
			return err
		}
	}

	metrics := iometrics.New()
	defer writeMetrics(metrics)

	client := ioeutils.New(cfg, metrics)
	imp := ioimport.New(cfg, client, st,
		ioimport.OptMetrics(metrics),
		ioimport.OptProgress(showProgress(cmd)),
	)
	_, err = imp.Import(ctx)
	return err
}

// writeMetrics saves metrics of a run if metrics file is configured.
func writeMetrics(m *iometrics.Metrics) {
	if cfg.MetricsFile == "" {
		return
	}
	if err := m.WriteFile(cfg.MetricsFile); err != nil {
		gn.PrintErrorMessage(err)
		return
	}
	slog.Info("Metrics saved", "path", cfg.MetricsFile)
}
