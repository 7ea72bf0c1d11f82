package descset

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

// WholeSize selects the remainder of a buffer from the view's offset.
const WholeSize = ^uint64(0)

// BufferView is a formatted view of a buffer range, the element type of
// texel-buffer bindings. The WebGPU HAL has no texel-buffer view object, so
// descset carries the buffer handle together with its format and range.
//
// A BufferView is immutable after construction and is shared by reference:
// writing the same view to several elements stores the same *BufferView.
type BufferView struct {
	buffer hal.Buffer
	format types.TextureFormat
	offset uint64
	size   uint64
}

// NewBufferView creates a view of size bytes of buffer starting at offset,
// interpreted as format. Pass [WholeSize] to view the remainder of the
// buffer from offset.
func NewBufferView(buffer hal.Buffer, format types.TextureFormat, offset, size uint64) (*BufferView, error) {
	if buffer == nil {
		return nil, fmt.Errorf("%w: buffer view has no buffer", ErrNilResource)
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: offset %d", ErrZeroRange, offset)
	}
	return &BufferView{
		buffer: buffer,
		format: format,
		offset: offset,
		size:   size,
	}, nil
}

// Buffer returns the viewed buffer handle.
func (v *BufferView) Buffer() hal.Buffer {
	return v.buffer
}

// Format returns the texel format the buffer is viewed as.
func (v *BufferView) Format() types.TextureFormat {
	return v.format
}

// Offset returns the view's byte offset into the buffer.
func (v *BufferView) Offset() uint64 {
	return v.offset
}

// Size returns the view's byte size, or WholeSize.
func (v *BufferView) Size() uint64 {
	return v.size
}

// ImageSampler pairs an image view with the sampler used to sample it, the
// element type of combined-image-sampler bindings without immutable
// samplers. The zero value is an unset element.
type ImageSampler struct {
	View    hal.TextureView
	Sampler hal.Sampler
}

// IsZero reports whether the pair is unset.
func (p ImageSampler) IsZero() bool {
	return p.View == nil && p.Sampler == nil
}
