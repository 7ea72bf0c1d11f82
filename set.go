package descset

import "fmt"

// Set ties a [Layout] to the [Resources] tracking its current bindings,
// together with the variable descriptor count the set was created with.
//
// Set performs no internal locking; see the package documentation for the
// concurrency contract.
type Set struct {
	layout    *Layout
	resources *Resources
	varCount  uint32
}

// NewSet creates a descriptor set for layout with every element unset.
// variableCount chooses the element count of the layout's variable-count
// binding, if any, and must not exceed the layout's declared maximum.
func NewSet(layout *Layout, variableCount uint32) (*Set, error) {
	resources, err := NewResources(layout, variableCount)
	if err != nil {
		return nil, err
	}
	return &Set{
		layout:    layout,
		resources: resources,
		varCount:  variableCount,
	}, nil
}

// Layout returns the layout the set was created from.
func (s *Set) Layout() *Layout {
	return s.layout
}

// VariableDescriptorCount returns the variable count the set was created with.
func (s *Set) VariableDescriptorCount() uint32 {
	return s.varCount
}

// Resources returns the set's resource table.
func (s *Set) Resources() *Resources {
	return s.resources
}

// Update applies writes to the set in order. See [Resources.Update] for
// the per-write atomicity contract.
func (s *Set) Update(writes ...*Write) error {
	return s.resources.Update(writes...)
}

// Binding returns the resources bound at the given binding number, or
// false if the layout has no such binding.
func (s *Set) Binding(binding uint32) (BindingResources, bool) {
	return s.resources.Binding(binding)
}

// ValidateComplete reports whether every element of every binding is set,
// returning ErrIncomplete naming the first unset element otherwise. None
// bindings are complete by definition.
//
// Useful as a last check before lowering the set into driver-level update
// commands, where unset descriptors would be an error.
func (s *Set) ValidateComplete() error {
	for _, n := range s.resources.BindingNumbers() {
		b, _ := s.resources.Binding(n)
		for i := 0; i < b.Len(); i++ {
			if !b.IsSet(i) {
				return fmt.Errorf("%w: binding %d element %d is not set", ErrIncomplete, n, i)
			}
		}
	}
	return nil
}
