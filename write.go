package descset

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// Write is a single descriptor update: it names a binding, a first array
// element, and the new elements for the contiguous range starting there.
// The payload's kind must match the target binding's kind.
//
// A Write is immutable after construction and may be applied any number of
// times, to any set whose layout it fits.
type Write struct {
	binding uint32
	first   uint32
	kind    BindingKind

	// Exactly one of these is non-nil, selected by kind.
	buffers       []hal.Buffer
	bufferViews   []*BufferView
	imageViews    []hal.TextureView
	imageSamplers []ImageSampler
	samplers      []hal.Sampler
}

// NewBufferWrite creates a write binding buffers to the elements
// [first, first+len(buffers)) of a buffer-kind binding.
func NewBufferWrite(binding, first uint32, buffers ...hal.Buffer) (*Write, error) {
	if len(buffers) == 0 {
		return nil, emptyWrite(binding)
	}
	for i, b := range buffers {
		if b == nil {
			return nil, nilElement(binding, first, i)
		}
	}
	return &Write{
		binding: binding,
		first:   first,
		kind:    BindingKindBuffer,
		buffers: append([]hal.Buffer(nil), buffers...),
	}, nil
}

// NewBufferViewWrite creates a write binding buffer views to the elements
// [first, first+len(views)) of a texel-buffer-kind binding.
func NewBufferViewWrite(binding, first uint32, views ...*BufferView) (*Write, error) {
	if len(views) == 0 {
		return nil, emptyWrite(binding)
	}
	for i, v := range views {
		if v == nil {
			return nil, nilElement(binding, first, i)
		}
	}
	return &Write{
		binding:     binding,
		first:       first,
		kind:        BindingKindBufferView,
		bufferViews: append([]*BufferView(nil), views...),
	}, nil
}

// NewImageViewWrite creates a write binding image views to the elements
// [first, first+len(views)) of an image-kind binding. This is also the
// write kind for combined-image-sampler bindings whose samplers are
// immutable.
func NewImageViewWrite(binding, first uint32, views ...hal.TextureView) (*Write, error) {
	if len(views) == 0 {
		return nil, emptyWrite(binding)
	}
	for i, v := range views {
		if v == nil {
			return nil, nilElement(binding, first, i)
		}
	}
	return &Write{
		binding:    binding,
		first:      first,
		kind:       BindingKindImageView,
		imageViews: append([]hal.TextureView(nil), views...),
	}, nil
}

// NewImageViewSamplerWrite creates a write binding image-view/sampler pairs
// to the elements [first, first+len(pairs)) of a combined-image-sampler
// binding without immutable samplers.
func NewImageViewSamplerWrite(binding, first uint32, pairs ...ImageSampler) (*Write, error) {
	if len(pairs) == 0 {
		return nil, emptyWrite(binding)
	}
	for i, p := range pairs {
		if p.View == nil || p.Sampler == nil {
			return nil, nilElement(binding, first, i)
		}
	}
	return &Write{
		binding:       binding,
		first:         first,
		kind:          BindingKindImageViewSampler,
		imageSamplers: append([]ImageSampler(nil), pairs...),
	}, nil
}

// NewSamplerWrite creates a write binding samplers to the elements
// [first, first+len(samplers)) of a sampler-kind binding.
func NewSamplerWrite(binding, first uint32, samplers ...hal.Sampler) (*Write, error) {
	if len(samplers) == 0 {
		return nil, emptyWrite(binding)
	}
	for i, s := range samplers {
		if s == nil {
			return nil, nilElement(binding, first, i)
		}
	}
	return &Write{
		binding:  binding,
		first:    first,
		kind:     BindingKindSampler,
		samplers: append([]hal.Sampler(nil), samplers...),
	}, nil
}

// Binding returns the target binding number.
func (w *Write) Binding() uint32 {
	return w.binding
}

// FirstElement returns the first array element the write targets.
func (w *Write) FirstElement() uint32 {
	return w.first
}

// Kind returns the resource kind of the write's payload.
func (w *Write) Kind() BindingKind {
	return w.kind
}

// Count returns the number of elements in the write's payload.
func (w *Write) Count() int {
	switch w.kind {
	case BindingKindBuffer:
		return len(w.buffers)
	case BindingKindBufferView:
		return len(w.bufferViews)
	case BindingKindImageView:
		return len(w.imageViews)
	case BindingKindImageViewSampler:
		return len(w.imageSamplers)
	case BindingKindSampler:
		return len(w.samplers)
	default:
		return 0
	}
}

// Buffers returns the payload of a Buffer-kind write, or nil.
// The returned slice is shared; callers must not modify it.
func (w *Write) Buffers() []hal.Buffer {
	return w.buffers
}

// BufferViews returns the payload of a BufferView-kind write, or nil.
// The returned slice is shared; callers must not modify it.
func (w *Write) BufferViews() []*BufferView {
	return w.bufferViews
}

// ImageViews returns the payload of an ImageView-kind write, or nil.
// The returned slice is shared; callers must not modify it.
func (w *Write) ImageViews() []hal.TextureView {
	return w.imageViews
}

// ImageSamplers returns the payload of an ImageViewSampler-kind write, or nil.
// The returned slice is shared; callers must not modify it.
func (w *Write) ImageSamplers() []ImageSampler {
	return w.imageSamplers
}

// Samplers returns the payload of a Sampler-kind write, or nil.
// The returned slice is shared; callers must not modify it.
func (w *Write) Samplers() []hal.Sampler {
	return w.samplers
}

func emptyWrite(binding uint32) error {
	return fmt.Errorf("%w: binding %d", ErrEmptyWrite, binding)
}

func nilElement(binding, first uint32, i int) error {
	return fmt.Errorf("%w: binding %d element %d", ErrNilResource, binding, first+uint32(i))
}
