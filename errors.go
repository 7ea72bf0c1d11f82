package descset

import "errors"

// Package errors. All of these are caller-contract violations: they signal
// malformed input from the layout producer or write producer, not transient
// failures, so callers should not retry them.
var (
	// ErrNilLayout is returned when constructing resources or a set from a nil layout.
	ErrNilLayout = errors.New("descset: layout is nil")

	// ErrVariableCount is returned when the requested variable descriptor count
	// exceeds the layout's declared maximum.
	ErrVariableCount = errors.New("descset: variable descriptor count exceeds layout maximum")

	// ErrUnknownBinding is returned when a write names a binding that does not
	// exist in the layout.
	ErrUnknownBinding = errors.New("descset: write has unknown binding number")

	// ErrKindMismatch is returned when a write's resource kind does not match
	// the kind of its target binding.
	ErrKindMismatch = errors.New("descset: write has wrong resource kind for binding")

	// ErrOutOfBounds is returned when a write's element range exceeds the
	// target binding's descriptor count.
	ErrOutOfBounds = errors.New("descset: write out of bounds for binding")

	// ErrDuplicateBinding is returned when a layout declares the same binding
	// number more than once.
	ErrDuplicateBinding = errors.New("descset: duplicate binding number in layout")

	// ErrDescriptorType is returned when a layout binding declares an unknown
	// descriptor type.
	ErrDescriptorType = errors.New("descset: invalid descriptor type")

	// ErrVariableCountBinding is returned when a layout's variable-count
	// binding is misplaced or of a kind that cannot be variable.
	ErrVariableCountBinding = errors.New("descset: invalid variable-count binding")

	// ErrImmutableSamplerKind is returned when a layout supplies immutable
	// samplers for a binding kind that cannot hold them.
	ErrImmutableSamplerKind = errors.New("descset: immutable samplers on non-sampler binding")

	// ErrImmutableSamplerCount is returned when the number of immutable
	// samplers does not match the binding's descriptor count.
	ErrImmutableSamplerCount = errors.New("descset: immutable sampler count mismatch")

	// ErrEmptyWrite is returned when constructing a write with no elements.
	ErrEmptyWrite = errors.New("descset: write has no elements")

	// ErrNilResource is returned when a write or buffer view is constructed
	// with a nil resource handle.
	ErrNilResource = errors.New("descset: resource handle is nil")

	// ErrZeroRange is returned when a buffer view is constructed with a zero
	// byte range.
	ErrZeroRange = errors.New("descset: buffer view range is zero")

	// ErrIncomplete is returned by Set.ValidateComplete when a binding still
	// has unset elements.
	ErrIncomplete = errors.New("descset: descriptor set is incomplete")
)
