package descset

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

// LayoutBinding describes a single binding of a descriptor set layout.
type LayoutBinding struct {
	// Binding is the binding number. Numbers need not be contiguous.
	Binding uint32

	// Type is the declared resource kind.
	Type DescriptorType

	// DescriptorCount is the number of elements in the binding's array.
	// For a variable-count binding this is the maximum; the actual count is
	// chosen when a set is created.
	DescriptorCount uint32

	// VariableCount marks the binding's array length as decided at set
	// creation rather than by the layout. Only the highest-numbered binding
	// may be variable.
	VariableCount bool

	// Visibility is the set of shader stages that can access the binding.
	Visibility types.ShaderStage

	// ImmutableSamplers bakes samplers into the layout. Only valid on
	// Sampler and CombinedImageSampler bindings, and must contain exactly
	// DescriptorCount samplers.
	ImmutableSamplers []hal.Sampler
}

// Layout describes the bindings of a descriptor set.
//
// A Layout is immutable after construction. It is the input consumed by
// [NewResources] and [NewSet]; descset does not create driver-level layout
// objects from it.
type Layout struct {
	bindings []LayoutBinding
	byNumber map[uint32]int
	maxVar   uint32
}

// NewLayout creates a layout from the given bindings.
//
// The binding slice is copied; the caller may reuse it. Returns an error if
// a binding number repeats, a descriptor type is unknown, immutable
// samplers are malformed, or a variable-count binding is not the
// highest-numbered binding or is of a dynamic buffer type.
func NewLayout(bindings []LayoutBinding) (*Layout, error) {
	l := &Layout{
		bindings: make([]LayoutBinding, len(bindings)),
		byNumber: make(map[uint32]int, len(bindings)),
	}

	highest := uint32(0)
	variable := -1
	for i, b := range bindings {
		if !b.Type.valid() {
			return nil, fmt.Errorf("%w: binding %d has type %d", ErrDescriptorType, b.Binding, uint32(b.Type))
		}
		if _, ok := l.byNumber[b.Binding]; ok {
			return nil, fmt.Errorf("%w: binding %d", ErrDuplicateBinding, b.Binding)
		}
		if len(b.ImmutableSamplers) > 0 {
			if !b.Type.hasImmutableSamplers() {
				return nil, fmt.Errorf("%w: binding %d has type %s", ErrImmutableSamplerKind, b.Binding, b.Type)
			}
			if uint32(len(b.ImmutableSamplers)) != b.DescriptorCount {
				return nil, fmt.Errorf("%w: binding %d has %d samplers for count %d",
					ErrImmutableSamplerCount, b.Binding, len(b.ImmutableSamplers), b.DescriptorCount)
			}
		}
		if b.VariableCount {
			if variable >= 0 {
				return nil, fmt.Errorf("%w: more than one variable-count binding", ErrVariableCountBinding)
			}
			if b.Type.dynamic() {
				return nil, fmt.Errorf("%w: binding %d has dynamic type %s", ErrVariableCountBinding, b.Binding, b.Type)
			}
			variable = i
		}
		if b.Binding >= highest {
			highest = b.Binding
		}

		// Copy the binding, including its sampler list, so later caller
		// mutations cannot reach into the layout.
		c := b
		c.ImmutableSamplers = append([]hal.Sampler(nil), b.ImmutableSamplers...)
		l.bindings[i] = c
		l.byNumber[b.Binding] = i
	}

	if variable >= 0 {
		if l.bindings[variable].Binding != highest {
			return nil, fmt.Errorf("%w: binding %d is variable but %d is higher",
				ErrVariableCountBinding, l.bindings[variable].Binding, highest)
		}
		l.maxVar = l.bindings[variable].DescriptorCount
	}

	return l, nil
}

// Binding returns the layout binding with the given number.
func (l *Layout) Binding(binding uint32) (LayoutBinding, bool) {
	i, ok := l.byNumber[binding]
	if !ok {
		return LayoutBinding{}, false
	}
	return l.bindings[i], true
}

// Bindings returns the layout's bindings in declaration order.
//
// The returned slice is shared; callers must not modify it.
func (l *Layout) Bindings() []LayoutBinding {
	return l.bindings
}

// Len returns the number of bindings in the layout.
func (l *Layout) Len() int {
	return len(l.bindings)
}

// MaxVariableDescriptorCount returns the declared maximum for the layout's
// variable-count binding, or 0 if the layout has none.
func (l *Layout) MaxVariableDescriptorCount() uint32 {
	return l.maxVar
}
