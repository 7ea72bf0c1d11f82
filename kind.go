package descset

// DescriptorType identifies the kind of resource a layout binding declares.
//
// The values mirror the Vulkan descriptor types that map onto bindable
// resources; descset only cares about which element category each type
// stores, not about shader access semantics.
type DescriptorType uint32

// Descriptor types.
const (
	// DescriptorTypeSampler is a standalone sampler.
	DescriptorTypeSampler DescriptorType = iota + 1

	// DescriptorTypeCombinedImageSampler is an image view paired with a sampler.
	DescriptorTypeCombinedImageSampler

	// DescriptorTypeSampledImage is an image view sampled in shaders.
	DescriptorTypeSampledImage

	// DescriptorTypeStorageImage is an image view with shader load/store access.
	DescriptorTypeStorageImage

	// DescriptorTypeUniformTexelBuffer is a formatted read-only buffer view.
	DescriptorTypeUniformTexelBuffer

	// DescriptorTypeStorageTexelBuffer is a formatted read-write buffer view.
	DescriptorTypeStorageTexelBuffer

	// DescriptorTypeUniformBuffer is a read-only buffer range.
	DescriptorTypeUniformBuffer

	// DescriptorTypeStorageBuffer is a read-write buffer range.
	DescriptorTypeStorageBuffer

	// DescriptorTypeUniformBufferDynamic is a uniform buffer with a
	// bind-time dynamic offset.
	DescriptorTypeUniformBufferDynamic

	// DescriptorTypeStorageBufferDynamic is a storage buffer with a
	// bind-time dynamic offset.
	DescriptorTypeStorageBufferDynamic

	// DescriptorTypeInputAttachment is an image view read as a framebuffer input.
	DescriptorTypeInputAttachment
)

// String returns the descriptor type name.
func (t DescriptorType) String() string {
	switch t {
	case DescriptorTypeSampler:
		return "Sampler"
	case DescriptorTypeCombinedImageSampler:
		return "CombinedImageSampler"
	case DescriptorTypeSampledImage:
		return "SampledImage"
	case DescriptorTypeStorageImage:
		return "StorageImage"
	case DescriptorTypeUniformTexelBuffer:
		return "UniformTexelBuffer"
	case DescriptorTypeStorageTexelBuffer:
		return "StorageTexelBuffer"
	case DescriptorTypeUniformBuffer:
		return "UniformBuffer"
	case DescriptorTypeStorageBuffer:
		return "StorageBuffer"
	case DescriptorTypeUniformBufferDynamic:
		return "UniformBufferDynamic"
	case DescriptorTypeStorageBufferDynamic:
		return "StorageBufferDynamic"
	case DescriptorTypeInputAttachment:
		return "InputAttachment"
	default:
		return "Unknown"
	}
}

// valid reports whether t is one of the declared descriptor types.
func (t DescriptorType) valid() bool {
	return t >= DescriptorTypeSampler && t <= DescriptorTypeInputAttachment
}

// hasImmutableSamplers reports whether t may carry immutable samplers in
// the layout.
func (t DescriptorType) hasImmutableSamplers() bool {
	return t == DescriptorTypeSampler || t == DescriptorTypeCombinedImageSampler
}

// dynamic reports whether t takes a bind-time dynamic offset. Dynamic
// bindings cannot have a variable descriptor count.
func (t DescriptorType) dynamic() bool {
	return t == DescriptorTypeUniformBufferDynamic || t == DescriptorTypeStorageBufferDynamic
}

// BindingKind is the closed set of element categories a binding can hold.
//
// The kind of a binding is fixed at set creation and never changes. It is
// derived from the layout's DescriptorType together with the presence of
// immutable samplers; see [KindFor].
type BindingKind uint32

// Binding kinds.
const (
	// BindingKindNone holds no user-writable elements. Produced by sampler
	// bindings whose samplers are baked into the layout.
	BindingKindNone BindingKind = iota

	// BindingKindBuffer holds hal.Buffer elements.
	BindingKindBuffer

	// BindingKindBufferView holds *BufferView elements.
	BindingKindBufferView

	// BindingKindImageView holds hal.TextureView elements.
	BindingKindImageView

	// BindingKindImageViewSampler holds ImageSampler pair elements.
	BindingKindImageViewSampler

	// BindingKindSampler holds hal.Sampler elements.
	BindingKindSampler
)

// String returns the binding kind name.
func (k BindingKind) String() string {
	switch k {
	case BindingKindNone:
		return "None"
	case BindingKindBuffer:
		return "Buffer"
	case BindingKindBufferView:
		return "BufferView"
	case BindingKindImageView:
		return "ImageView"
	case BindingKindImageViewSampler:
		return "ImageViewSampler"
	case BindingKindSampler:
		return "Sampler"
	default:
		return "Unknown"
	}
}

// KindFor returns the binding kind a descriptor type stores.
//
// Combined image samplers with immutable samplers degrade to ImageView:
// the sampler half is baked into the layout and not user-writable. Sampler
// bindings with immutable samplers have nothing user-writable at all and
// degrade to None.
func KindFor(t DescriptorType, immutableSamplers bool) BindingKind {
	switch t {
	case DescriptorTypeUniformBuffer,
		DescriptorTypeStorageBuffer,
		DescriptorTypeUniformBufferDynamic,
		DescriptorTypeStorageBufferDynamic:
		return BindingKindBuffer
	case DescriptorTypeUniformTexelBuffer, DescriptorTypeStorageTexelBuffer:
		return BindingKindBufferView
	case DescriptorTypeSampledImage, DescriptorTypeStorageImage, DescriptorTypeInputAttachment:
		return BindingKindImageView
	case DescriptorTypeCombinedImageSampler:
		if immutableSamplers {
			return BindingKindImageView
		}
		return BindingKindImageViewSampler
	case DescriptorTypeSampler:
		if immutableSamplers {
			return BindingKindNone
		}
		return BindingKindSampler
	default:
		return BindingKindNone
	}
}
