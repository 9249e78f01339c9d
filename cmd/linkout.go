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
	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/internal/ioeutils"
	"github.com/gnames/ncbitax/internal/iolinkout"
	"github.com/gnames/ncbitax/internal/iometrics"
	"github.com/gnames/ncbitax/internal/iostore"
	"github.com/spf13/cobra"
)

// getLinkOutCmd returns the linkout command.
func getLinkOutCmd() *cobra.Command {
	linkOutCmd := &cobra.Command{
		Use:   "linkout",
		Short: "Add NCBI LinkOut references to imported taxa",
		Long: `Add external references to objects imported from NCBI Taxonomy.

For every object with a {namespace}/taxonomy/ncbi/TaxId tag the ELink
LinkOut list is requested. Links of known providers are saved:

  {namespace}/taxonomy/linkout/Wikipedia    (iPhylo Wikipedia links)
  {namespace}/taxonomy/linkout/BBCWildlife  (BBC Wildlife Finder)

Objects without such links are not changed.

Examples:
  ncbitax linkout
  ncbitax linkout -q -m /var/lib/node_exporter/ncbitax.prom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(flagOptions(cmd))
			err := runLinkOut(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addStoreFlags(linkOutCmd)
	addRunFlags(linkOutCmd)

	return linkOutCmd
}

func runLinkOut(cmd *cobra.Command) error {
	ctx, cancel := runContext()
	defer cancel()

	st, err := iostore.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	metrics := iometrics.New()
	defer writeMetrics(metrics)

	client := ioeutils.New(cfg, metrics)
	enr := iolinkout.New(cfg, client, st,
		iolinkout.OptMetrics(metrics),
		iolinkout.OptProgress(showProgress(cmd)),
	)
	_, err = enr.Enrich(ctx)
	return err
}
