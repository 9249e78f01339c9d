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
	"github.com/gnames/ncbitax/pkg/config"
	"github.com/spf13/cobra"
)

// addStoreFlags adds flags that select the tag store.
func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("store", "s", "",
		"store type: sqlite or postgres")
	cmd.Flags().StringP("namespace", "n", "",
		"root namespace of tag paths")
}

// addRunFlags adds flags shared by commands that talk to NCBI.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("quiet", "q", false, "do not show progress bar")
	cmd.Flags().StringP("metrics-file", "m", "",
		"write Prometheus metrics of the run to a file")
}

// flagOptions converts flags set by user to config options, so they
// override environment variables and config.yaml.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	str := func(name string, opt func(string) config.Option) {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			s, _ := flags.GetString(name)
			res = append(res, opt(s))
		}
	}

	str("store", config.OptStoreType)
	str("namespace", config.OptStoreNamespace)
	str("metrics-file", config.OptMetricsFile)
	str("term", config.OptImportTerm)

	if flags.Lookup("page-size") != nil && flags.Changed("page-size") {
		i, _ := flags.GetInt("page-size")
		res = append(res, config.OptImportPageSize(i))
	}
	if flags.Lookup("with-canonical") != nil && flags.Changed("with-canonical") {
		b, _ := flags.GetBool("with-canonical")
		res = append(res, config.OptImportWithCanonical(b))
	}
	return res
}

// showProgress is false when the quiet flag is set.
func showProgress(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return !quiet
}
