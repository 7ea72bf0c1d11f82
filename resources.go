package descset

import (
	"fmt"
	"slices"

	"github.com/gogpu/wgpu/hal"
)

// BindingResources holds the elements currently bound to a single binding.
//
// The interface is sealed: the only implementations are [NoneBinding],
// [BufferBinding], [BufferViewBinding], [ImageViewBinding],
// [ImageViewSamplerBinding] and [SamplerBinding], one per [BindingKind].
// A binding's kind and element count are fixed when its [Resources] table
// is created and never change.
type BindingResources interface {
	// Kind returns the binding's element kind.
	Kind() BindingKind

	// Len returns the binding's fixed element count.
	Len() int

	// IsSet reports whether element i holds a resource. i must be in
	// [0, Len()).
	IsSet(i int) bool

	// apply validates w against the binding and, only if every check
	// passes, replaces the elements [w.first, w.first+w.Count()).
	apply(w *Write) error
}

// NoneBinding is the slot for bindings with nothing user-writable: sampler
// bindings whose samplers are baked into the layout. Every write to it
// fails with ErrKindMismatch.
type NoneBinding struct{}

// Kind returns BindingKindNone.
func (*NoneBinding) Kind() BindingKind { return BindingKindNone }

// Len returns 0.
func (*NoneBinding) Len() int { return 0 }

// IsSet returns false; a None binding has no elements.
func (*NoneBinding) IsSet(int) bool { return false }

func (b *NoneBinding) apply(w *Write) error {
	return kindMismatch(w, b.Kind())
}

// BufferBinding holds the buffers bound to a buffer-kind binding.
// Unset elements are nil.
type BufferBinding struct {
	elements []hal.Buffer
}

// Kind returns BindingKindBuffer.
func (*BufferBinding) Kind() BindingKind { return BindingKindBuffer }

// Len returns the binding's fixed element count.
func (b *BufferBinding) Len() int { return len(b.elements) }

// IsSet reports whether element i holds a buffer.
func (b *BufferBinding) IsSet(i int) bool { return b.elements[i] != nil }

// Buffers returns the binding's elements; unset elements are nil.
// The returned slice is shared; callers must not modify it.
func (b *BufferBinding) Buffers() []hal.Buffer { return b.elements }

func (b *BufferBinding) apply(w *Write) error {
	if w.kind != BindingKindBuffer {
		return kindMismatch(w, b.Kind())
	}
	if err := checkBounds(w, len(b.elements)); err != nil {
		return err
	}
	copy(b.elements[w.first:], w.buffers)
	return nil
}

// BufferViewBinding holds the buffer views bound to a texel-buffer-kind
// binding. Unset elements are nil.
type BufferViewBinding struct {
	elements []*BufferView
}

// Kind returns BindingKindBufferView.
func (*BufferViewBinding) Kind() BindingKind { return BindingKindBufferView }

// Len returns the binding's fixed element count.
func (b *BufferViewBinding) Len() int { return len(b.elements) }

// IsSet reports whether element i holds a buffer view.
func (b *BufferViewBinding) IsSet(i int) bool { return b.elements[i] != nil }

// BufferViews returns the binding's elements; unset elements are nil.
// The returned slice is shared; callers must not modify it.
func (b *BufferViewBinding) BufferViews() []*BufferView { return b.elements }

func (b *BufferViewBinding) apply(w *Write) error {
	if w.kind != BindingKindBufferView {
		return kindMismatch(w, b.Kind())
	}
	if err := checkBounds(w, len(b.elements)); err != nil {
		return err
	}
	copy(b.elements[w.first:], w.bufferViews)
	return nil
}

// ImageViewBinding holds the image views bound to an image-kind binding,
// including combined-image-sampler bindings whose samplers are immutable.
// Unset elements are nil.
type ImageViewBinding struct {
	elements []hal.TextureView
}

// Kind returns BindingKindImageView.
func (*ImageViewBinding) Kind() BindingKind { return BindingKindImageView }

// Len returns the binding's fixed element count.
func (b *ImageViewBinding) Len() int { return len(b.elements) }

// IsSet reports whether element i holds an image view.
func (b *ImageViewBinding) IsSet(i int) bool { return b.elements[i] != nil }

// ImageViews returns the binding's elements; unset elements are nil.
// The returned slice is shared; callers must not modify it.
func (b *ImageViewBinding) ImageViews() []hal.TextureView { return b.elements }

func (b *ImageViewBinding) apply(w *Write) error {
	if w.kind != BindingKindImageView {
		return kindMismatch(w, b.Kind())
	}
	if err := checkBounds(w, len(b.elements)); err != nil {
		return err
	}
	copy(b.elements[w.first:], w.imageViews)
	return nil
}

// ImageViewSamplerBinding holds the image-view/sampler pairs bound to a
// combined-image-sampler binding without immutable samplers. Unset elements
// are the zero ImageSampler.
type ImageViewSamplerBinding struct {
	elements []ImageSampler
}

// Kind returns BindingKindImageViewSampler.
func (*ImageViewSamplerBinding) Kind() BindingKind { return BindingKindImageViewSampler }

// Len returns the binding's fixed element count.
func (b *ImageViewSamplerBinding) Len() int { return len(b.elements) }

// IsSet reports whether element i holds a pair.
func (b *ImageViewSamplerBinding) IsSet(i int) bool { return !b.elements[i].IsZero() }

// ImageSamplers returns the binding's elements; unset elements are the zero
// pair. The returned slice is shared; callers must not modify it.
func (b *ImageViewSamplerBinding) ImageSamplers() []ImageSampler { return b.elements }

func (b *ImageViewSamplerBinding) apply(w *Write) error {
	if w.kind != BindingKindImageViewSampler {
		return kindMismatch(w, b.Kind())
	}
	if err := checkBounds(w, len(b.elements)); err != nil {
		return err
	}
	copy(b.elements[w.first:], w.imageSamplers)
	return nil
}

// SamplerBinding holds the samplers bound to a sampler-kind binding
// without immutable samplers. Unset elements are nil.
type SamplerBinding struct {
	elements []hal.Sampler
}

// Kind returns BindingKindSampler.
func (*SamplerBinding) Kind() BindingKind { return BindingKindSampler }

// Len returns the binding's fixed element count.
func (b *SamplerBinding) Len() int { return len(b.elements) }

// IsSet reports whether element i holds a sampler.
func (b *SamplerBinding) IsSet(i int) bool { return b.elements[i] != nil }

// Samplers returns the binding's elements; unset elements are nil.
// The returned slice is shared; callers must not modify it.
func (b *SamplerBinding) Samplers() []hal.Sampler { return b.elements }

func (b *SamplerBinding) apply(w *Write) error {
	if w.kind != BindingKindSampler {
		return kindMismatch(w, b.Kind())
	}
	if err := checkBounds(w, len(b.elements)); err != nil {
		return err
	}
	copy(b.elements[w.first:], w.samplers)
	return nil
}

func kindMismatch(w *Write, got BindingKind) error {
	return fmt.Errorf("%w: %s write to %s binding %d", ErrKindMismatch, w.kind, got, w.binding)
}

func checkBounds(w *Write, length int) error {
	end := int(w.first) + w.Count()
	if end > length {
		return fmt.Errorf("%w: binding %d elements [%d, %d) with count %d",
			ErrOutOfBounds, w.binding, w.first, end, length)
	}
	return nil
}

// Resources tracks what is bound at every binding of a descriptor set.
//
// The table is built once from a layout; its binding-number key set and the
// kind and element count of every binding never change afterward. All
// elements start unset.
//
// Resources performs no internal locking; see the package documentation
// for the concurrency contract.
type Resources struct {
	bindings map[uint32]BindingResources
}

// NewResources creates the resource table for layout with all elements
// unset. variableCount is the element count of the layout's variable-count
// binding, if it has one; it must not exceed
// layout.MaxVariableDescriptorCount().
func NewResources(layout *Layout, variableCount uint32) (*Resources, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	if variableCount > layout.MaxVariableDescriptorCount() {
		return nil, fmt.Errorf("%w: %d > %d", ErrVariableCount, variableCount, layout.MaxVariableDescriptorCount())
	}

	r := &Resources{
		bindings: make(map[uint32]BindingResources, layout.Len()),
	}
	for _, b := range layout.Bindings() {
		count := b.DescriptorCount
		if b.VariableCount {
			count = variableCount
		}

		var res BindingResources
		switch KindFor(b.Type, len(b.ImmutableSamplers) > 0) {
		case BindingKindBuffer:
			res = &BufferBinding{elements: make([]hal.Buffer, count)}
		case BindingKindBufferView:
			res = &BufferViewBinding{elements: make([]*BufferView, count)}
		case BindingKindImageView:
			res = &ImageViewBinding{elements: make([]hal.TextureView, count)}
		case BindingKindImageViewSampler:
			res = &ImageViewSamplerBinding{elements: make([]ImageSampler, count)}
		case BindingKindSampler:
			res = &SamplerBinding{elements: make([]hal.Sampler, count)}
		default:
			res = &NoneBinding{}
		}
		r.bindings[b.Binding] = res
	}

	Logger().Debug("descset: resource table created",
		"bindings", layout.Len(), "variableCount", variableCount)

	return r, nil
}

// Update applies writes in order.
//
// Each write is validated and applied independently: a write either
// modifies its whole element range or nothing, and a failing write aborts
// the call while writes before it stay applied. Later writes overwrite
// overlapping ranges set by earlier ones.
func (r *Resources) Update(writes ...*Write) error {
	for _, w := range writes {
		b, ok := r.bindings[w.binding]
		if !ok {
			return fmt.Errorf("%w: binding %d", ErrUnknownBinding, w.binding)
		}
		if err := b.apply(w); err != nil {
			return err
		}
	}
	return nil
}

// Binding returns the resources bound at the given binding number, or
// false if the layout has no such binding.
func (r *Resources) Binding(binding uint32) (BindingResources, bool) {
	b, ok := r.bindings[binding]
	return b, ok
}

// Len returns the number of bindings in the table.
func (r *Resources) Len() int {
	return len(r.bindings)
}

// BindingNumbers returns the table's binding numbers in ascending order.
// Handy for consumers that lower the table into driver update commands and
// want deterministic output.
func (r *Resources) BindingNumbers() []uint32 {
	nums := make([]uint32, 0, len(r.bindings))
	for n := range r.bindings {
		nums = append(nums, n)
	}
	slices.Sort(nums)
	return nums
}
