package mock

import (
	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.Flattener = (*Flattener)(nil)

// Flattener is a mock implementation of posgrados.Flattener.
type Flattener struct {
	FlattenFn   func(html string) (*posgrados.PageText, error)
	ListItemsFn func(html string) ([]string, error)
}

func (f *Flattener) Flatten(html string) (*posgrados.PageText, error) {
	return f.FlattenFn(html)
}

func (f *Flattener) ListItems(html string) ([]string, error) {
	return f.ListItemsFn(html)
}
