package warehouse

import (
	"errors"
	"fmt"
	"strings"
)

// CapacityExceededError is returned when a spawn would exceed the
// World's configured entity capacity.
type CapacityExceededError struct {
	MaxEntities int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("warehouse: capacity exceeded, max entities is %d", e.MaxEntities)
}

// UnknownComponentError is returned when an operation references a
// component that was not registered with the World.
type UnknownComponentError struct {
	Component  string
	Registered []string
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf(
		"warehouse: unknown component %q, registered components are [%s]",
		e.Component, strings.Join(e.Registered, ", "),
	)
}

// MissingComponentError is returned by get/set/update/remove when the
// entity's archetype bit for the component is clear.
type MissingComponentError struct {
	Entity    EntityID
	Component string
	Has       []string
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf(
		"warehouse: entity %d does not have component %q, it carries [%s]",
		e.Entity, e.Component, strings.Join(e.Has, ", "),
	)
}

// DeadEntityError is returned when an operation targets an entity
// whose alive-flag is clear.
type DeadEntityError struct {
	Entity EntityID
}

func (e DeadEntityError) Error() string {
	return fmt.Sprintf("warehouse: entity %d is not alive", e.Entity)
}

// DuplicateComponentError is returned at World construction when two
// components share the same name.
type DuplicateComponentError struct {
	Component string
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("warehouse: duplicate component name %q", e.Component)
}

// UnknownFieldError is returned when a system binding or partial
// update names a field the component descriptor does not declare.
type UnknownFieldError struct {
	Component string
	Field     string
}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("warehouse: component %q has no field %q", e.Component, e.Field)
}

// EmptySignatureError is returned by RegisterSystem when the supplied
// component signature is empty.
type EmptySignatureError struct{}

func (e EmptySignatureError) Error() string {
	return "warehouse: system signature must name at least one component"
}

// UnsupportedFieldTypeError is returned when a component struct field's
// Go type has no corresponding primitive field kind.
type UnsupportedFieldTypeError struct {
	Component string
	Field     string
	GoType    string
}

func (e UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf(
		"warehouse: field %s.%s has unsupported type %s, want one of uint8/uint16/uint32/int32/float32",
		e.Component, e.Field, e.GoType,
	)
}

// ErrNotImplemented is returned by Deserialize, which is a deliberate
// stub until the wire-format collaborator is finalized.
var ErrNotImplemented = errors.New("warehouse: not yet implemented")
