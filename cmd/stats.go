package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/astvisitor"
)

type documentStats struct {
	kinds map[ast.NodeKind]int
	// depth of the deepest node, the Document is at 0
	depth int
	// nesting of fields in operations and fragments
	fieldDepth int
}

func newStatsCmd(cfg *config) *cobra.Command {
	var asJSON bool

	statsCmd := &cobra.Command{
		Use:     "stats [files]",
		Short:   "stats counts the nodes of GraphQL documents by kind",
		Example: "gqlast stats --json query.graphql",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			documents, err := cfg.load(args, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := range documents {
				stats, err := collectStats(documents[i].document, cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", documents[i].name, err)
				}
				if asJSON {
					err = writeStatsJSON(out, documents[i].name, stats)
				} else {
					err = writeStatsText(out, documents[i].name, stats)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	statsCmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per document")
	return statsCmd
}

// collectStats walks document once, with one visitor per statistic.
func collectStats(document *ast.Document, cfg *config) (documentStats, error) {
	stats := documentStats{
		kinds: map[ast.NodeKind]int{},
	}

	kinds := astvisitor.VisitorFuncs{
		Enter: func(node ast.Node, w *astvisitor.Walker) ast.Node {
			stats.kinds[node.Kind()]++
			if w.Depth > stats.depth {
				stats.depth = w.Depth
			}
			return node
		},
	}

	fields := 0
	fieldDepth := astvisitor.VisitorFuncs{
		Enter: func(node ast.Node, w *astvisitor.Walker) ast.Node {
			kind := node.Kind()
			switch {
			case kind == ast.NodeKindField:
				fields++
				if fields > stats.fieldDepth {
					stats.fieldDepth = fields
				}
			case kind.IsTypeSystemDefinition(), kind.IsTypeSystemExtension():
				w.SkipNode()
			}
			return node
		},
		Leave: func(node ast.Node, w *astvisitor.Walker) ast.Node {
			if node.Kind() == ast.NodeKindField {
				fields--
			}
			return node
		},
	}

	_, err := astvisitor.Walk(document, astvisitor.Parallel(kinds, fieldDepth), astvisitor.WithLogger(cfg.log))
	return stats, err
}

func writeStatsText(out io.Writer, name string, stats documentStats) error {
	if _, err := fmt.Fprintf(out, "%s\n", name); err != nil {
		return err
	}
	for _, kind := range ast.NodeKinds() {
		if stats.kinds[kind] == 0 {
			continue
		}
		if _, err := fmt.Fprintf(out, "  %-26s %d\n", kind, stats.kinds[kind]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "  %-26s %d\n  %-26s %d\n", "depth", stats.depth, "fieldDepth", stats.fieldDepth)
	return err
}

func writeStatsJSON(out io.Writer, name string, stats documentStats) error {
	// existing keys are replaced in place, so the top level order is the one of the template
	data := []byte(`{"file":"","kinds":{},"depth":0,"fieldDepth":0}`)
	var err error
	if data, err = sjson.SetBytes(data, "file", name); err != nil {
		return err
	}
	// sjson inserts new keys at the front of an object, add kinds last to first
	kinds := ast.NodeKinds()
	for i := len(kinds) - 1; i >= 0; i-- {
		if stats.kinds[kinds[i]] == 0 {
			continue
		}
		if data, err = sjson.SetBytes(data, "kinds."+kinds[i].String(), stats.kinds[kinds[i]]); err != nil {
			return err
		}
	}
	if data, err = sjson.SetBytes(data, "depth", stats.depth); err != nil {
		return err
	}
	if data, err = sjson.SetBytes(data, "fieldDepth", stats.fieldDepth); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
