package assets

import (
	"fmt"

	"github.com/DragonQuiz/mcedit2/pkg/formats"
)

// Library is the descriptor cache: a memoized loader for model and
// blockstate documents, keyed by resource name. Parsed documents are
// cached for the lifetime of the library and must not be mutated by
// callers.
type Library struct {
	loader      Loader
	models      map[string]*formats.ModelDocument
	blockstates map[string]*formats.BlockstateDocument
}

// NewLibrary creates a document library backed by the given loader.
func NewLibrary(loader Loader) *Library {
	return &Library{
		loader:      loader,
		models:      make(map[string]*formats.ModelDocument),
		blockstates: make(map[string]*formats.BlockstateDocument),
	}
}

// Model returns the model document for a name, loading and parsing
// "models/<name>.json" on first use. A missing resource surfaces as
// ErrNotFound; malformed JSON as formats.ErrMalformedModel.
func (l *Library) Model(name string) (*formats.ModelDocument, error) {
	if doc, ok := l.models[name]; ok {
		return doc, nil
	}

	data, err := l.loader.Load("models/" + name + ".json")
	if err != nil {
		return nil, err
	}

	doc, err := formats.ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", name, err)
	}

	l.models[name] = doc
	return doc, nil
}

// Blockstate returns the blockstate document for a name, loading and
// parsing "blockstates/<name>.json" on first use.
func (l *Library) Blockstate(name string) (*formats.BlockstateDocument, error) {
	if doc, ok := l.blockstates[name]; ok {
		return doc, nil
	}

	data, err := l.loader.Load("blockstates/" + name + ".json")
	if err != nil {
		return nil, err
	}

	doc, err := formats.ParseBlockstate(data)
	if err != nil {
		return nil, fmt.Errorf("blockstate %q: %w", name, err)
	}

	l.blockstates[name] = doc
	return doc, nil
}
