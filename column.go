package warehouse

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// columnStoreIface is the type-erased view of a columnStore[T] the
// World holds one of per registered component. Operations that need
// the concrete T (whole-record read/write) live in the package-level
// generic functions (AddComponent, ReadComponent, ...) and type-assert
// back down to *columnStore[T]; operations that only need
// field metadata (raw field-array exposure, clearing, snapshotting)
// stay on this interface so the World never needs to know T.
type columnStoreIface interface {
	descriptor() *ComponentDescriptor
	fieldArray(name string) (any, error)
	clear(eid EntityID)
	snapshotFields(ids []EntityID) map[string]any
}

// columnStore holds one packed primitive array per field of component
// T, each sized to the World's entity capacity. The i-th slot of
// every field array jointly represents the component record attached
// to entity id i. zero is the reusable read-target scratch value: its
// contents are implementation-owned and valid only until the next
// read on this store.
type columnStore[T any] struct {
	desc     *ComponentDescriptor
	columns  []any // columns[i] is a concrete []uint8/[]uint16/[]uint32/[]int32/[]float32
	fieldIdx []int // struct field index within T for desc.fields[i], resolved once
	zero     T
}

func newColumnStore[T any](desc *ComponentDescriptor, capacity int) *columnStore[T] {
	cs := &columnStore[T]{
		desc:     desc,
		columns:  make([]any, len(desc.fields)),
		fieldIdx: make([]int, len(desc.fields)),
	}
	for i, fd := range desc.fields {
		sf, ok := desc.goType.FieldByName(fd.Name)
		if !ok {
			panic(bark.AddTrace(errors.New("warehouse: field " + fd.Name + " vanished from " + desc.name + " between registration and allocation")))
		}
		cs.fieldIdx[i] = sf.Index[0]
		switch fd.Kind {
		case KindU8:
			cs.columns[i] = make([]uint8, capacity)
		case KindU16:
			cs.columns[i] = make([]uint16, capacity)
		case KindU32:
			cs.columns[i] = make([]uint32, capacity)
		case KindI32:
			cs.columns[i] = make([]int32, capacity)
		case KindF32:
			cs.columns[i] = make([]float32, capacity)
		}
	}
	return cs
}

func (cs *columnStore[T]) descriptor() *ComponentDescriptor { return cs.desc }

func (cs *columnStore[T]) fieldArray(name string) (any, error) {
	i, ok := cs.desc.fieldIndex[name]
	if !ok {
		return nil, UnknownFieldError{Component: cs.desc.name, Field: name}
	}
	return cs.columns[i], nil
}

// write copies every field of rec into the field arrays at eid. Small
// records (the common 2-4 field case) pay for exactly one reflect
// field access per field; the struct-field index was resolved once at
// construction, not on every call.
func (cs *columnStore[T]) write(eid EntityID, rec T) {
	v := reflect.ValueOf(rec)
	for i, fd := range cs.desc.fields {
		fv := v.Field(cs.fieldIdx[i])
		switch fd.Kind {
		case KindU8:
			cs.columns[i].([]uint8)[eid] = uint8(fv.Uint())
		case KindU16:
			cs.columns[i].([]uint16)[eid] = uint16(fv.Uint())
		case KindU32:
			cs.columns[i].([]uint32)[eid] = uint32(fv.Uint())
		case KindI32:
			cs.columns[i].([]int32)[eid] = int32(fv.Int())
		case KindF32:
			cs.columns[i].([]float32)[eid] = float32(fv.Float())
		}
	}
}

// partialWrite writes only the fields named in patch, by value. Field
// names are resolved through the descriptor's name->index table; a
// type mismatch or unknown name is surfaced as an error rather than
// panicking through reflect.
func (cs *columnStore[T]) partialWrite(eid EntityID, patch map[string]any) error {
	for name, val := range patch {
		i, ok := cs.desc.fieldIndex[name]
		if !ok {
			return UnknownFieldError{Component: cs.desc.name, Field: name}
		}
		fd := cs.desc.fields[i]
		switch fd.Kind {
		case KindU8:
			n, ok := val.(uint8)
			if !ok {
				return fmt.Errorf("field %s.%s expects uint8, got %T", cs.desc.name, name, val)
			}
			cs.columns[i].([]uint8)[eid] = n
		case KindU16:
			n, ok := val.(uint16)
			if !ok {
				return fmt.Errorf("field %s.%s expects uint16, got %T", cs.desc.name, name, val)
			}
			cs.columns[i].([]uint16)[eid] = n
		case KindU32:
			n, ok := val.(uint32)
			if !ok {
				return fmt.Errorf("field %s.%s expects uint32, got %T", cs.desc.name, name, val)
			}
			cs.columns[i].([]uint32)[eid] = n
		case KindI32:
			n, ok := val.(int32)
			if !ok {
				return fmt.Errorf("field %s.%s expects int32, got %T", cs.desc.name, name, val)
			}
			cs.columns[i].([]int32)[eid] = n
		case KindF32:
			n, ok := val.(float32)
			if !ok {
				return fmt.Errorf("field %s.%s expects float32, got %T", cs.desc.name, name, val)
			}
			cs.columns[i].([]float32)[eid] = n
		}
	}
	return nil
}

// read populates the store-owned scratch record from eid's slot and
// returns a read-only reference to it. The reference is invalidated
// by the next read on this store; callers that must retain the value
// copy it out via readCopy.
func (cs *columnStore[T]) read(eid EntityID) *T {
	cs.populate(&cs.zero, eid)
	return &cs.zero
}

func (cs *columnStore[T]) readCopy(eid EntityID) T {
	var out T
	cs.populate(&out, eid)
	return out
}

func (cs *columnStore[T]) populate(dst *T, eid EntityID) {
	v := reflect.ValueOf(dst).Elem()
	for i, fd := range cs.desc.fields {
		fv := v.Field(cs.fieldIdx[i])
		switch fd.Kind {
		case KindU8:
			fv.SetUint(uint64(cs.columns[i].([]uint8)[eid]))
		case KindU16:
			fv.SetUint(uint64(cs.columns[i].([]uint16)[eid]))
		case KindU32:
			fv.SetUint(uint64(cs.columns[i].([]uint32)[eid]))
		case KindI32:
			fv.SetInt(int64(cs.columns[i].([]int32)[eid]))
		case KindF32:
			fv.SetFloat(float64(cs.columns[i].([]float32)[eid]))
		}
	}
}

func (cs *columnStore[T]) clear(eid EntityID) {
	for i, fd := range cs.desc.fields {
		switch fd.Kind {
		case KindU8:
			cs.columns[i].([]uint8)[eid] = 0
		case KindU16:
			cs.columns[i].([]uint16)[eid] = 0
		case KindU32:
			cs.columns[i].([]uint32)[eid] = 0
		case KindI32:
			cs.columns[i].([]int32)[eid] = 0
		case KindF32:
			cs.columns[i].([]float32)[eid] = 0
		}
	}
}

func (cs *columnStore[T]) snapshotFields(ids []EntityID) map[string]any {
	out := make(map[string]any, len(cs.desc.fields))
	for i, fd := range cs.desc.fields {
		switch fd.Kind {
		case KindU8:
			src := cs.columns[i].([]uint8)
			dst := make([]uint8, len(ids))
			for j, id := range ids {
				dst[j] = src[id]
			}
			out[fd.Name] = dst
		case KindU16:
			src := cs.columns[i].([]uint16)
			dst := make([]uint16, len(ids))
			for j, id := range ids {
				dst[j] = src[id]
			}
			out[fd.Name] = dst
		case KindU32:
			src := cs.columns[i].([]uint32)
			dst := make([]uint32, len(ids))
			for j, id := range ids {
				dst[j] = src[id]
			}
			out[fd.Name] = dst
		case KindI32:
			src := cs.columns[i].([]int32)
			dst := make([]int32, len(ids))
			for j, id := range ids {
				dst[j] = src[id]
			}
			out[fd.Name] = dst
		case KindF32:
			src := cs.columns[i].([]float32)
			dst := make([]float32, len(ids))
			for j, id := range ids {
				dst[j] = src[id]
			}
			out[fd.Name] = dst
		}
	}
	return out
}

// FieldRef is a stable, direct reference to a single field's backing
// array. It is the foundation of the raw/direct-access contract:
// callers index it by entity id at will, with no bounds or liveness
// check, and no allocation.
type FieldRef[K Primitive] struct {
	arr []K
}

// Get returns the field value at eid.
func (f FieldRef[K]) Get(eid EntityID) K { return f.arr[eid] }

// Set writes the field value at eid.
func (f FieldRef[K]) Set(eid EntityID, v K) { f.arr[eid] = v }

// Array returns the raw backing array, valid for the lifetime of the
// owning World.
func (f FieldRef[K]) Array() []K { return f.arr }

// Field resolves a stable reference to one field's backing array.
// Resolve once, at system-registration time or equivalent, and index
// the result by entity id inside the hot loop.
func Field[K Primitive](w *World, c ComponentHandle, field string) (FieldRef[K], error) {
	store, err := w.columnStoreFor(c.Descriptor())
	if err != nil {
		return FieldRef[K]{}, err
	}
	raw, err := store.fieldArray(field)
	if err != nil {
		return FieldRef[K]{}, err
	}
	arr, ok := raw.([]K)
	if !ok {
		return FieldRef[K]{}, UnknownFieldError{Component: c.Descriptor().name, Field: field}
	}
	return FieldRef[K]{arr: arr}, nil
}
