package cmd

import (
	"fmt"
	"io"

	"github.com/buger/jsonparser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/wundergraph/gqlast/pkg/ast"
)

func newParseCmd(cfg *config) *cobra.Command {
	var format string

	parseCmd := &cobra.Command{
		Use:   "parse [files]",
		Short: "parse prints the canonical form of GraphQL documents",
		Long: `parse prints the canonical form of every document, one JSON object per line.
With --format yaml the same tree is printed as a stream of YAML documents, field order is kept.`,
		Example: "gqlast parse --no-location schema.graphql query.graphql",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("parse: unknown format %q, must be json or yaml", format)
			}

			documents, err := cfg.load(args, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := range documents {
				data, err := ast.MarshalNode(documents[i].document)
				if err != nil {
					return err
				}
				if format == "json" {
					_, err = fmt.Fprintf(out, "%s\n", data)
				} else {
					err = writeYAML(out, data)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	parseCmd.Flags().StringVarP(&format, "format", "f", "json", "output format, json or yaml")
	return parseCmd
}

func writeYAML(out io.Writer, canonical []byte) error {
	value, err := yamlValue(canonical, jsonparser.Object)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(out, "---\n"); err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// yamlValue converts canonical JSON into values yaml.v2 renders in the same field order.
func yamlValue(data []byte, dataType jsonparser.ValueType) (interface{}, error) {
	switch dataType {
	case jsonparser.Object:
		out := yaml.MapSlice{}
		err := jsonparser.ObjectEach(data, func(key []byte, value []byte, valueType jsonparser.ValueType, _ int) error {
			converted, err := yamlValue(value, valueType)
			if err != nil {
				return err
			}
			out = append(out, yaml.MapItem{Key: string(key), Value: converted})
			return nil
		})
		return out, err
	case jsonparser.Array:
		out := []interface{}{}
		var itemErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, valueType jsonparser.ValueType, _ int, _ error) {
			if itemErr != nil {
				return
			}
			converted, err := yamlValue(value, valueType)
			if err != nil {
				itemErr = err
				return
			}
			out = append(out, converted)
		})
		if err != nil {
			return nil, err
		}
		return out, itemErr
	case jsonparser.String:
		return jsonparser.ParseString(data)
	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(data); err == nil {
			return i, nil
		}
		return jsonparser.ParseFloat(data)
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(data)
	case jsonparser.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected json value of type %s", dataType)
	}
}
