package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/actuallystonmai/stream-aggregator/internal/catalog"
	"github.com/actuallystonmai/stream-aggregator/internal/index"
	"github.com/actuallystonmai/stream-aggregator/internal/intent"
	"github.com/actuallystonmai/stream-aggregator/internal/platform"
	"github.com/actuallystonmai/stream-aggregator/internal/search"
	"github.com/spf13/cobra"
)

// app is everything a subcommand needs, built from the --catalog flag.
type app struct {
	table     *catalog.Table
	index     *index.Index
	platforms *platform.Catalog
	engine    *search.Engine
	parser    *intent.Parser
}

func newRootCmd() *cobra.Command {
	var catalogPath string

	root := &cobra.Command{
		Use:          "streamctl",
		Short:        "Query the streaming catalog and test remote commands offline",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in demo catalog)")

	load := func(cmd *cobra.Command) (*app, error) {
		var source catalog.Source = catalog.Embedded()
		if catalogPath != "" {
			source = catalog.File(catalogPath)
		}
		table, err := source.Load(cmd.Context())
		if err != nil {
			return nil, err
		}
		idx := index.New(table)
		platforms := platform.NewCatalog(table.DomainPlatforms())
		return &app{
			table:     table,
			index:     idx,
			platforms: platforms,
			engine:    search.NewEngine(idx, platforms),
			parser:    intent.NewParser(platforms),
		}, nil
	}

	root.AddCommand(
		newSearchCmd(load),
		newParseCmd(load),
		newPlatformsCmd(load),
		newExportCmd(load),
	)
	return root
}

type loader func(cmd *cobra.Command) (*app, error)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
