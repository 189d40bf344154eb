package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jensneuse/abstractlogger"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/astcache"
	"github.com/wundergraph/gqlast/pkg/graphqlerrors"
)

type loadedDocument struct {
	name     string
	document *ast.Document
}

// load parses every named file, "-" reads stdin. Files with the same content are parsed once.
// With error-response set, a parse error is also written to out as a GraphQL response.
func (c *config) load(names []string, out io.Writer) ([]loadedDocument, error) {
	cache, err := astcache.New(astcache.Config{
		Size:    len(names),
		Options: c.parseOptions(),
		Logger:  c.log,
	})
	if err != nil {
		return nil, err
	}

	documents := make([]loadedDocument, 0, len(names))
	for _, name := range names {
		source, err := readSource(name)
		if err != nil {
			return nil, err
		}
		document, err := cache.Parse(source)
		if err != nil {
			if c.viper.GetBool("error-response") {
				if _, writeErr := graphqlerrors.RequestErrorsFromError(err).WriteResponse(out); writeErr != nil {
					return nil, writeErr
				}
				_, _ = io.WriteString(out, "\n")
			}
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		documents = append(documents, loadedDocument{name: name, document: document})
	}

	stats := cache.Stats()
	c.log.Debug("documents loaded",
		abstractlogger.Int("files", len(names)),
		abstractlogger.Int("parsed", int(stats.Misses)),
		abstractlogger.Int("cached", int(stats.Hits)),
	)
	return documents, nil
}

func readSource(name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
