// Package descset tracks the resources bound to a descriptor set.
//
// # Overview
//
// descset is a pure in-process bookkeeping library for Vulkan-style
// descriptor sets in the GoGPU ecosystem. Given a [Layout] describing the
// resource kind and element count of each binding, it maintains a table of
// what is currently bound at every binding, and validates and applies
// incremental [Write] updates to that table. Resources are stored as opaque
// gogpu/wgpu HAL handles; descset never invokes driver behavior on them —
// it only stores and shares references.
//
// # Quick Start
//
//	import "github.com/gogpu/descset"
//
//	layout, err := descset.NewLayout([]descset.LayoutBinding{
//	    {Binding: 0, Type: descset.DescriptorTypeUniformBuffer, DescriptorCount: 1},
//	    {Binding: 1, Type: descset.DescriptorTypeCombinedImageSampler, DescriptorCount: 4},
//	})
//	if err != nil {
//	    return err
//	}
//
//	set, err := descset.NewSet(layout, 0)
//	if err != nil {
//	    return err
//	}
//
//	w, err := descset.NewBufferWrite(0, 0, uniformBuf)
//	if err != nil {
//	    return err
//	}
//	if err := set.Update(w); err != nil {
//	    return err
//	}
//
// # Binding Kinds
//
// Each binding holds elements of exactly one [BindingKind], decided at set
// creation from the layout's [DescriptorType] and immutable-sampler
// configuration. Writes of a different kind, or writes past the end of a
// binding's element array, are rejected without modifying the binding.
//
// # Thread Safety
//
// All operations are synchronous and perform no internal locking. A Set and
// its Resources must not be mutated concurrently with other access; callers
// that share a set across goroutines must supply their own synchronization.
//
// # Errors
//
// Every failure is a caller-contract violation reported through the
// package's sentinel errors ([ErrUnknownBinding], [ErrKindMismatch],
// [ErrOutOfBounds], ...), wrapped with the binding number and offending
// range, and matchable with errors.Is.
package descset
