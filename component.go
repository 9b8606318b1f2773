package warehouse

import (
	"fmt"
	"reflect"
)

// ComponentDescriptor is the registration-time metadata for a
// component: its name, ordered field list, and total record width.
// It is shared by every copy of the Component[T] handle that one
// NewComponent call returned (each call allocates a new descriptor)
// and is mutated once, at World construction, to record the
// column/bit index the World assigned it.
type ComponentDescriptor struct {
	name       string
	fields     []FieldDescriptor
	fieldIndex map[string]int
	stride     int
	goType     reflect.Type
	index      int // -1 until registered with a World
}

// Name returns the component's registered name.
func (d *ComponentDescriptor) Name() string { return d.name }

// Fields returns the component's ordered field list.
func (d *ComponentDescriptor) Fields() []FieldDescriptor { return d.fields }

// Stride returns the total byte width of one record. Informational.
func (d *ComponentDescriptor) Stride() int { return d.stride }

// Index returns the column/bit index assigned at World construction,
// or -1 if the descriptor has not been registered with any World yet.
func (d *ComponentDescriptor) Index() int { return d.index }

// ComponentHandle is the type-erased view of a Component[T] used
// wherever client code need not know the underlying Go struct type:
// signatures, Has/Remove, field bindings.
type ComponentHandle interface {
	Descriptor() *ComponentDescriptor
	newColumnStore(capacity int) columnStoreIface
}

// Component is the typed handle client code holds for a registered
// component. It pairs the shared descriptor with the concrete Go
// struct type T, mirroring the descriptor+accessor split client code
// uses for strongly-typed field access.
type Component[T any] struct {
	desc *ComponentDescriptor
}

// Descriptor returns the component's shared descriptor.
func (c Component[T]) Descriptor() *ComponentDescriptor { return c.desc }

func (c Component[T]) newColumnStore(capacity int) columnStoreIface {
	return newColumnStore[T](c.desc, capacity)
}

// NewComponent derives a ComponentDescriptor from T's exported fields
// via reflection. Every exported field's Go type must map to one of
// the primitive field kinds (uint8, uint16, uint32, int32, float32);
// any other type is a registration-time error. Field order follows
// struct declaration order.
func NewComponent[T any](name string) (Component[T], error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Struct {
		return Component[T]{}, fmt.Errorf("warehouse: component %q must be backed by a struct type", name)
	}

	fields := make([]FieldDescriptor, 0, t.NumField())
	fieldIndex := make(map[string]int, t.NumField())
	stride := 0

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		kind, ok := fieldKindOf(sf.Type.Kind())
		if !ok {
			return Component[T]{}, UnsupportedFieldTypeError{
				Component: name, Field: sf.Name, GoType: sf.Type.String(),
			}
		}
		if _, dup := fieldIndex[sf.Name]; dup {
			return Component[T]{}, fmt.Errorf("warehouse: component %q has duplicate field %q", name, sf.Name)
		}
		fieldIndex[sf.Name] = len(fields)
		fields = append(fields, FieldDescriptor{Name: sf.Name, Kind: kind})
		stride += kind.Width()
	}

	desc := &ComponentDescriptor{
		name:       name,
		fields:     fields,
		fieldIndex: fieldIndex,
		stride:     stride,
		goType:     t,
		index:      -1,
	}
	return Component[T]{desc: desc}, nil
}

func fieldKindOf(k reflect.Kind) (FieldKind, bool) {
	switch k {
	case reflect.Uint8:
		return KindU8, true
	case reflect.Uint16:
		return KindU16, true
	case reflect.Uint32:
		return KindU32, true
	case reflect.Int32:
		return KindI32, true
	case reflect.Float32:
		return KindF32, true
	default:
		return 0, false
	}
}
