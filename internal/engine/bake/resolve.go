package bake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DragonQuiz/mcedit2/internal/assets"
	"github.com/DragonQuiz/mcedit2/pkg/formats"
)

// maxResolveDepth bounds both the model parent chain and texture
// variable chains. Chains this deep only occur in self-referential
// data, so exceeding the bound is reported as a cycle.
const maxResolveDepth = 30

// Resolution errors.
var (
	ErrParentCycle       = errors.New("model parent cycle")
	ErrTextureCycle      = errors.New("texture variable cycle")
	ErrUnassignedTexture = errors.New("unassigned texture variable")
)

// resolveModel walks a model's parent chain and merges it into a
// single (textures, elements) pair. Texture variables merge child to
// parent: a variable set by a more specific model is never replaced
// by an ancestor's definition. Elements accumulate from every level
// of the chain.
func resolveModel(lib *assets.Library, name string) (map[string]string, []formats.Element, error) {
	textures := make(map[string]string)
	var elements []formats.Element

	current := name
	for hops := 0; ; hops++ {
		if hops > maxResolveDepth {
			return nil, nil, fmt.Errorf("%w: starting at %q", ErrParentCycle, name)
		}

		doc, err := lib.Model(current)
		if err != nil {
			return nil, nil, err
		}

		for variable, value := range doc.Textures {
			if _, set := textures[variable]; !set {
				textures[variable] = value
			}
		}
		elements = append(elements, doc.Elements...)

		if doc.Parent == "" {
			return textures, elements, nil
		}
		current = doc.Parent
	}
}

// resolveTexture follows "#name" indirection until it reaches a
// concrete texture identifier. Resolving an already-concrete
// reference returns it unchanged.
func resolveTexture(ref string, textures map[string]string) (string, error) {
	for hops := 0; strings.HasPrefix(ref, "#"); hops++ {
		if hops >= maxResolveDepth {
			return "", fmt.Errorf("%w: %q", ErrTextureCycle, ref)
		}

		next, ok := textures[ref[1:]]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnassignedTexture, ref)
		}
		ref = next
	}
	return ref, nil
}
