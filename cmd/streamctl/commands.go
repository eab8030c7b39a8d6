package main

import (
	"strings"

	"github.com/actuallystonmai/stream-aggregator/internal/catalog"
	"github.com/actuallystonmai/stream-aggregator/internal/domain"
	"github.com/spf13/cobra"
)

func newSearchCmd(load loader) *cobra.Command {
	var (
		platforms []string
		genre     string
		typ       string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog by text and filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			res, err := a.engine.Search(domain.SearchQuery{
				Query:     strings.Join(args, " "),
				Platforms: platforms,
				Genre:     genre,
				Type:      typ,
				Limit:     limit,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringSliceVarP(&platforms, "platform", "p", nil, "Restrict to platform ids (repeatable)")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre, case-insensitive")
	cmd.Flags().StringVar(&typ, "type", "", "Content type, e.g. movie or series")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results, clamped to 1..50 (default 20)")
	return cmd
}

func newParseCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <command...>",
		Short: "Classify a remote/voice command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			command := strings.Join(args, " ")
			return printJSON(cmd.OutOrStdout(), struct {
				Command string              `json:"command"`
				Parsed  domain.ParsedIntent `json:"parsed"`
			}{command, a.parser.Parse(command)})
		},
	}
}

func newPlatformsCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List known platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), struct {
				Platforms []domain.Platform `json:"platforms"`
				Items     int               `json:"items"`
			}{a.platforms.All(), a.index.Len()})
		},
	}
}

// export writes the active catalog as YAML, ready to edit and load back with
// --catalog or CATALOG_FILE.
func newExportCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			return catalog.Encode(cmd.OutOrStdout(), a.table)
		},
	}
}
