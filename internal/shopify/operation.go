package shopify

import (
	"errors"
	"sync"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

var operationNames sync.Map

// operationName parses the query document once and returns the name of its
// first operation, so logs and errors can say "getMenu" instead of dumping
// the whole document.
func operationName(query string) (string, error) {
	if v, ok := operationNames.Load(query); ok {
		return v.(string), nil
	}

	doc, err := parser.ParseQuery(&ast.Source{Name: "storefront", Input: query})
	if err != nil {
		return "", err
	}
	if len(doc.Operations) == 0 {
		return "", errors.New("query document has no operation")
	}

	name := doc.Operations[0].Name
	if name == "" {
		name = "anonymous"
	}
	operationNames.Store(query, name)
	return name, nil
}
