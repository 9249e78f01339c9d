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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/internal/iostore"
	"github.com/gnames/ncbitax/pkg/store"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create tag store schema",
		Long: `Create tables of the tag store from scratch.

This command:
  1. Opens the SQLite file or connects to PostgreSQL
  2. Checks for existing tables and prompts for confirmation
  3. Creates objects, tags and namespaces tables
     (GORM AutoMigrate and "C" collation for PostgreSQL)

Use --force to skip confirmation and drop existing tables.

Examples:
  ncbitax create
  ncbitax create --force
  ncbitax create -s postgres -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(flagOptions(cmd))
			err := runCreate(cmd.Context(), os.Stdin, forceCreate)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")
	addStoreFlags(createCmd)

	return createCmd
}

func runCreate(ctx context.Context, in io.Reader, force bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := iostore.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	gn.Info("Opened <em>%s</em> tag store", cfg.Store.Type)

	proceed, err := resetStore(ctx, st, in, force)
	if err != nil || !proceed {
		return err
	}

	gn.Info("Creating tables...")
	if err = st.CreateTables(ctx); err != nil {
		return err
	}

	gn.Info("\nTag store schema creation complete!")
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'ncbitax import' to import taxa")
	gn.Info("  - Run 'ncbitax linkout' to add LinkOut references")
	return nil
}

// resetStore drops existing tables after confirmation. It returns false
// if user declined.
func resetStore(
	ctx context.Context,
	st store.Schema,
	in io.Reader,
	force bool,
) (bool, error) {
	hasTables, err := st.HasTables(ctx)
	if err != nil {
		return false, err
	}
	if !hasTables {
		return true, nil
	}

	if !force {
		gn.Warn("\nWarning: Tag store contains existing tables.")
		gn.Warn("Creating schema will drop ALL existing tables and data.")
		fmt.Print("\nDo you want to continue? (yes/no): ")

		reader := bufio.NewReader(in)
		response, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			gn.Warn("Failed to read user input")
			return false, err
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "yes" && response != "y" {
			gn.Info("Aborted. No changes made.")
			return false, nil
		}
	} else {
		gn.Info("Dropping all existing tables (--force enabled)...")
	}

	if err = st.DropTables(ctx); err != nil {
		return false, err
	}
	gn.Info("Tag store tables dropped")
	return true, nil
}
