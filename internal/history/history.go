package history

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"go.uber.org/zap"

	"github.com/golddranks/scoped-stack/pkg/logger"
	"github.com/golddranks/scoped-stack/pkg/stack"
)

var (
	ErrEmptyName     = errors.New("handle name is empty")
	ErrDuplicateName = errors.New("handle name already declared")
	ErrUnknownParent = errors.New("parent handle is not in scope")
	ErrUnknownHandle = errors.New("unknown handle")
)

// History is a set of named stack handles in declaration order.
type History struct {
	// handles maps name to stack.Stack[string], keeping insertion order.
	handles *linkedhashmap.Map
	log     logger.Logger
}

// Build creates the roots of script and then each handle, in order. A handle may only derive
// from a root or an earlier handle, so the parent of every handle is always already built.
func Build(script *Script, log logger.Logger) (*History, error) {
	h := &History{
		handles: linkedhashmap.New(),
		log:     log,
	}

	for _, root := range script.Roots {
		if err := h.declare(root, stack.New[string]()); err != nil {
			return nil, err
		}
		log.Debug("declared root", zap.String("name", root))
	}

	for _, spec := range script.Handles {
		parent, ok := h.Lookup(spec.From)
		if !ok {
			return nil, fmt.Errorf("handle %q derives from %q: %w", spec.Name, spec.From, ErrUnknownParent)
		}

		s := parent
		for _, value := range spec.Push {
			s = s.Push(value)
		}

		if err := h.declare(spec.Name, s); err != nil {
			return nil, err
		}
		log.Debug("declared handle",
			zap.String("name", spec.Name),
			zap.String("from", spec.From),
			zap.Int("pushed", len(spec.Push)),
			zap.Int("depth", s.Len()),
		)
	}

	log.Info("history built", zap.Int("roots", len(script.Roots)), zap.Int("handles", len(script.Handles)))
	return h, nil
}

func (h *History) declare(name string, s stack.Stack[string]) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, found := h.handles.Get(name); found {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	h.handles.Put(name, s)
	return nil
}

// Names returns every root and handle name in declaration order.
func (h *History) Names() []string {
	keys := h.handles.Keys()
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, key.(string))
	}
	return names
}

// Lookup returns the handle declared under name.
func (h *History) Lookup(name string) (stack.Stack[string], bool) {
	value, found := h.handles.Get(name)
	if !found {
		return stack.Stack[string]{}, false
	}
	return value.(stack.Stack[string]), true
}

func (h *History) mustLookup(name string) (stack.Stack[string], error) {
	s, ok := h.Lookup(name)
	if !ok {
		return s, fmt.Errorf("%q: %w", name, ErrUnknownHandle)
	}
	return s, nil
}

// NamesOf returns the names of every declared handle that is the same handle as s, in
// declaration order.
func (h *History) NamesOf(s stack.Stack[string]) []string {
	var names []string
	it := h.handles.Iterator()
	for it.Next() {
		if it.Value().(stack.Stack[string]).Same(s) {
			names = append(names, it.Key().(string))
		}
	}
	return names
}
