// Package dispatch maps activity codes and flat argument lists to workouts.
package dispatch

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/workout"
)

var (
	// ErrUnknownActivityCode is returned for a code outside the registry.
	ErrUnknownActivityCode = errors.New("unknown activity code")
	// ErrArgumentArity is returned when the argument count does not match the variant.
	ErrArgumentArity = errors.New("argument count mismatch")
	// ErrInvalidArgument is returned when an argument cannot be bound to its field.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Dispatcher constructs workouts from activity codes
type Dispatcher struct {
	logger *log.Logger

	mu       sync.RWMutex
	variants map[string]Variant
	order    []string
}

// NewDispatcher creates a Dispatcher preloaded with DefaultVariants
func NewDispatcher(logger *log.Logger) *Dispatcher {
	if logger == nil {
		panic("Dispatcher: logger cannot be nil")
	}
	d := &Dispatcher{
		logger:   logger,
		variants: make(map[string]Variant, len(DefaultVariants)),
	}
	for _, v := range DefaultVariants {
		d.Register(v)
	}
	return d
}

// Register adds or replaces the variant for v.Code
func (d *Dispatcher) Register(v Variant) {
	if v.New == nil {
		panic("Dispatcher: variant constructor cannot be nil")
	}
	if len(v.Args) == 0 {
		panic("Dispatcher: variant must take at least the action count")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.variants[v.Code]; !exists {
		d.order = append(d.order, v.Code)
	}
	d.variants[v.Code] = v
	d.logger.Printf("Dispatcher: registered %s -> %s (%d args)", v.Code, v.Kind.Label(), len(v.Args))
}

// Variants returns the registered variants in registration order
func (d *Dispatcher) Variants() []Variant {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]Variant, 0, len(d.order))
	for _, code := range d.order {
		result = append(result, d.variants[code])
	}
	return result
}

// Read binds data positionally to the variant registered for code.
// An unknown code yields ErrUnknownActivityCode and no workout.
func (d *Dispatcher) Read(code string, data []float64) (workout.Workout, error) {
	d.mu.RLock()
	v, ok := d.variants[code]
	d.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivityCode, code)
	}

	if len(data) != len(v.Args) {
		return nil, fmt.Errorf("%w: %s takes %d arguments (%v), got %d",
			ErrArgumentArity, code, len(v.Args), v.Args, len(data))
	}

	action, err := actionCount(data[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", code, err)
	}

	// Copy so the workout never aliases the caller's slice
	rest := make([]float64, len(data)-1)
	copy(rest, data[1:])

	return v.New(action, rest), nil
}

// Largest magnitude at which every whole float64 is exact
const maxExactAction = 1 << 53

func actionCount(value float64) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, fmt.Errorf("%w: action count must be a whole number, got %v", ErrInvalidArgument, value)
	}
	if math.Abs(value) > maxExactAction {
		return 0, fmt.Errorf("%w: action count %v out of range", ErrInvalidArgument, value)
	}
	return int(value), nil
}
