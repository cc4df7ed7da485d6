package game

import (
	"errors"
	"fmt"
)

// ErrUnknownInputHandler is returned when no factory matches an id
var ErrUnknownInputHandler = errors.New("unknown input handler")

// InputHandlerRegistry keeps the available input handler factories
type InputHandlerRegistry struct {
	factories []GameInputHandlerFactory
	byID      map[string]GameInputHandlerFactory
}

// NewInputHandlerRegistry creates an empty registry
func NewInputHandlerRegistry() *InputHandlerRegistry {
	return &InputHandlerRegistry{
		byID: make(map[string]GameInputHandlerFactory),
	}
}

// Register adds a factory, ids must be unique
func (r *InputHandlerRegistry) Register(f GameInputHandlerFactory) error {
	if _, ok := r.byID[f.ID()]; ok {
		return fmt.Errorf("input handler %q already registered", f.ID())
	}
	r.byID[f.ID()] = f
	r.factories = append(r.factories, f)
	return nil
}

// Get returns the factory registered under id
func (r *InputHandlerRegistry) Get(id string) (GameInputHandlerFactory, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInputHandler, id)
	}
	return f, nil
}

// Create builds a handler with the factory registered under id
func (r *InputHandlerRegistry) Create(id string) (GameInputHandler, error) {
	f, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return f.Create(), nil
}

// Factories returns the factories in registration order
func (r *InputHandlerRegistry) Factories() []GameInputHandlerFactory {
	return r.factories
}

// DefaultInputHandlers returns a registry with the touch and keyboard
// handlers reading from the given sources
func DefaultInputHandlers(gp GamePlay, touches TouchSource, keys KeySource) *InputHandlerRegistry {
	r := NewInputHandlerRegistry()
	// ids are distinct, Register cannot fail here
	_ = r.Register(NewTouchInputHandlerFactory(touches, gp.HudButtonSize))
	_ = r.Register(NewKeyboardInputHandlerFactory(keys, gp.HudButtonSize))
	return r
}
