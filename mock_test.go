package descset

// Test doubles for the gogpu/wgpu HAL handle interfaces. descset never
// calls into its stored handles beyond Destroy-capable identity, so empty
// implementations are enough; the tests only compare handle identity.

// mockBuffer is a test double for hal.Buffer.
type mockBuffer struct {
	label string
}

// Destroy implements hal.Resource.
func (b *mockBuffer) Destroy() {}

// NativeHandle implements hal.NativeHandle.
func (b *mockBuffer) NativeHandle() uintptr { return 0 }

// mockTextureView is a test double for hal.TextureView.
type mockTextureView struct {
	label string
}

// Destroy implements hal.Resource.
func (v *mockTextureView) Destroy() {}

// NativeHandle implements hal.NativeHandle.
func (v *mockTextureView) NativeHandle() uintptr { return 0 }

// mockSampler is a test double for hal.Sampler.
type mockSampler struct {
	label string
}

// Destroy implements hal.Resource.
func (s *mockSampler) Destroy() {}

// NativeHandle implements hal.NativeHandle.
func (s *mockSampler) NativeHandle() uintptr { return 0 }
