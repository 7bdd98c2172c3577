package history

import (
	"context"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"

	"github.com/golddranks/scoped-stack/pkg/stack"
)

// Rendering describes one named handle.
type Rendering struct {
	Name   string `json:"name"`
	Depth  int    `json:"depth"`
	Debug  string `json:"debug"`
	Digest uint64 `json:"digest"`
}

// Step is one sub-stack visited by Walk.
type Step struct {
	Depth int    `json:"depth"`
	Top   string `json:"top"`
	Debug string `json:"debug"`
	// Names lists the declared handles that are this very sub-stack.
	Names []string `json:"names,omitempty"`
}

// Digest fingerprints the values of s from top to bottom. Equal stacks have equal digests.
func Digest(s stack.Stack[string]) uint64 {
	d := xxhash.New()

	var prefix []byte
	for value := range s.Values() {
		prefix = binary.AppendUvarint(prefix[:0], uint64(len(value)))
		_, _ = d.Write(prefix)
		_, _ = d.WriteString(value)
	}
	return d.Sum64()
}

// Render renders every handle in declaration order. Handles are rendered concurrently; they are
// only read, never written, so sharing their ancestry between goroutines is safe.
func (h *History) Render(ctx context.Context) ([]Rendering, error) {
	names := h.Names()

	renderings, err := iter.MapErr(names, func(name *string) (Rendering, error) {
		if err := ctx.Err(); err != nil {
			return Rendering{}, err
		}

		s, err := h.mustLookup(*name)
		if err != nil {
			return Rendering{}, err
		}

		return Rendering{
			Name:   *name,
			Depth:  s.Len(),
			Debug:  s.String(),
			Digest: Digest(s),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	h.log.Debug("rendered handles", zap.Int("count", len(renderings)))
	return renderings, nil
}

// Walk visits the handle called name and each of its non-empty ancestors, top to bottom.
func (h *History) Walk(name string) ([]Step, error) {
	s, err := h.mustLookup(name)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, s.Len())
	for sub := range s.Frames() {
		top, _ := sub.Peek()
		steps = append(steps, Step{
			Depth: sub.Len(),
			Top:   top,
			Debug: sub.String(),
			Names: h.NamesOf(sub),
		})
	}

	h.log.Debug("walked handle", zap.String("name", name), zap.Int("steps", len(steps)))
	return steps, nil
}

// Branch returns the point at which the histories of handles a and b diverged.
func (h *History) Branch(a, b string) (stack.Stack[string], error) {
	sa, err := h.mustLookup(a)
	if err != nil {
		return sa, err
	}
	sb, err := h.mustLookup(b)
	if err != nil {
		return sb, err
	}

	return stack.CommonAncestor(sa, sb), nil
}
