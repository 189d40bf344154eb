package cmd

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/astvisitor"
)

type rewriteOptions struct {
	dropFields     []string
	dropDirectives []string
	patch          bool
}

func newRewriteCmd(cfg *config) *cobra.Command {
	options := &rewriteOptions{}

	rewriteCmd := &cobra.Command{
		Use:   "rewrite [file]",
		Short: "rewrite removes fields and directives from a GraphQL document",
		Long: `rewrite removes every field whose name or alias is listed in --drop-field and every directive
listed in --drop-directive. The canonical form of the rewritten document is printed, with --patch
a JSON merge patch (RFC 7386) from the original to the rewritten form is printed instead.`,
		Example: "gqlast rewrite --drop-field password --drop-directive deprecated --patch query.graphql",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			documents, err := cfg.load(args, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			out, err := rewrite(documents[0].document, options, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", documents[0].name, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
			return err
		},
	}

	rewriteCmd.Flags().StringSliceVar(&options.dropFields, "drop-field", nil, "name or alias of the fields to remove (repeatable)")
	rewriteCmd.Flags().StringSliceVar(&options.dropDirectives, "drop-directive", nil, "name of the directives to remove (repeatable)")
	rewriteCmd.Flags().BoolVar(&options.patch, "patch", false, "print a JSON merge patch instead of the rewritten document")
	return rewriteCmd
}

func rewrite(document *ast.Document, options *rewriteOptions, cfg *config) ([]byte, error) {
	dropped := 0
	visitors := []astvisitor.Visitor{
		dropFields(options.dropFields, &dropped),
		dropDirectives(options.dropDirectives, &dropped),
	}

	result, err := astvisitor.Walk(document, astvisitor.Parallel(visitors...), astvisitor.WithLogger(cfg.log))
	if err != nil {
		return nil, err
	}
	cfg.log.Debug("document rewritten", abstractlogger.Int("dropped", dropped))

	rewritten, err := ast.MarshalNode(result)
	if err != nil {
		return nil, err
	}
	if !options.patch {
		return rewritten, nil
	}

	original, err := ast.MarshalNode(document)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(original, rewritten)
}

func dropFields(names []string, dropped *int) astvisitor.Visitor {
	drop := set(names)
	return astvisitor.OnKind(ast.NodeKindField, func(node ast.Node, w *astvisitor.Walker) ast.Node {
		field := node.(*ast.Field)
		if drop[field.Name.Value] || drop[field.ResponseKey()] {
			*dropped++
			return nil
		}
		return node
	}, nil)
}

func dropDirectives(names []string, dropped *int) astvisitor.Visitor {
	drop := set(names)
	return astvisitor.OnKind(ast.NodeKindDirective, func(node ast.Node, w *astvisitor.Walker) ast.Node {
		if drop[node.(*ast.Directive).Name.Value] {
			*dropped++
			return nil
		}
		return node
	}, nil)
}

func set(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, value := range values {
		out[value] = true
	}
	return out
}
