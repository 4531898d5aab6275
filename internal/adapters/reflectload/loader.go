// Package reflectload binds the runtime's reflection-style load entry point.
//
// Managed runtimes expose in-memory loading as a method shaped like
// Load(raw []byte, symbols T1, evidence T2) (R, error). No static binding to it
// exists in the embedding surface, so the method is looked up and invoked by
// reflection. Everything dynamic lives in this package; the rest of memload
// only sees ports.AssemblyLoader.
package reflectload

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/bft-labs/memload/internal/domain"
	"github.com/bft-labs/memload/internal/ports"
)

// DefaultMethod is the name of the three-argument load method.
const DefaultMethod = "Load"

var (
	bytesType      = reflect.TypeOf([]byte(nil))
	errorType      = reflect.TypeOf((*error)(nil)).Elem()
	reflectAsmType = reflect.TypeOf((*ports.ReflectionAssembly)(nil)).Elem()
)

// ErrBadMethod is returned when the facility's load method has the wrong shape.
var ErrBadMethod = errors.New("reflectload: unsupported load method")

// Loader implements ports.AssemblyLoader on top of a reflected method.
type Loader struct {
	name     string
	method   reflect.Value
	symbols  reflect.Value
	evidence reflect.Value
	hasErr   bool
}

// New binds facility's Load method.
func New(facility any) (*Loader, error) {
	return NewMethod(facility, DefaultMethod)
}

// NewMethod binds the named method of facility. The method must take three
// parameters, the first of type []byte, and return a value implementing
// ports.ReflectionAssembly, optionally followed by an error.
func NewMethod(facility any, name string) (*Loader, error) {
	if facility == nil {
		return nil, fmt.Errorf("%w: nil facility", ErrBadMethod)
	}
	method := reflect.ValueOf(facility).MethodByName(name)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: %T has no method %s", ErrBadMethod, facility, name)
	}

	mt := method.Type()
	if mt.NumIn() != 3 || mt.In(0) != bytesType {
		return nil, fmt.Errorf("%w: %s must be func([]byte, _, _), got %s", ErrBadMethod, name, mt)
	}
	switch {
	case mt.NumOut() == 1:
	case mt.NumOut() == 2 && mt.Out(1) == errorType:
	default:
		return nil, fmt.Errorf("%w: %s must return (result[, error]), got %s", ErrBadMethod, name, mt)
	}
	if !mt.Out(0).Implements(reflectAsmType) {
		return nil, fmt.Errorf("%w: %s result %s does not implement ReflectionAssembly", ErrBadMethod, name, mt.Out(0))
	}

	return &Loader{
		name:     name,
		method:   method,
		symbols:  reflect.Zero(mt.In(1)),
		evidence: reflect.Zero(mt.In(2)),
		hasErr:   mt.NumOut() == 2,
	}, nil
}

// LoadFromImage invokes the bound method with (image, nil, nil).
func (l *Loader) LoadFromImage(d ports.Domain, image []byte) (ports.ReflectionAssembly, error) {
	out := l.method.Call([]reflect.Value{reflect.ValueOf(image), l.symbols, l.evidence})

	if l.hasErr && !out[1].IsNil() {
		return nil, fmt.Errorf("%s in domain %d: %w", l.name, d.ID(), out[1].Interface().(error))
	}
	if isNil(out[0]) {
		return nil, fmt.Errorf("%s in domain %d: %w: runtime returned no assembly", l.name, d.ID(), domain.ErrInvalidImage)
	}
	return out[0].Interface().(ports.ReflectionAssembly), nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
