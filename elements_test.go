package descset

import (
	"errors"
	"testing"

	types "github.com/gogpu/gputypes"
)

func TestNewBufferView(t *testing.T) {
	buf := &mockBuffer{label: "texels"}

	v, err := NewBufferView(buf, types.TextureFormatRGBA32Float, 64, 1024)
	if err != nil {
		t.Fatalf("NewBufferView failed: %v", err)
	}
	if v.Buffer() != buf {
		t.Error("Buffer() is not the wrapped handle")
	}
	if v.Format() != types.TextureFormatRGBA32Float {
		t.Errorf("Format = %v, want RGBA32Float", v.Format())
	}
	if v.Offset() != 64 {
		t.Errorf("Offset = %d, want 64", v.Offset())
	}
	if v.Size() != 1024 {
		t.Errorf("Size = %d, want 1024", v.Size())
	}
}

func TestNewBufferViewWholeSize(t *testing.T) {
	v, err := NewBufferView(&mockBuffer{}, types.TextureFormatR32Float, 0, WholeSize)
	if err != nil {
		t.Fatalf("NewBufferView failed: %v", err)
	}
	if v.Size() != WholeSize {
		t.Errorf("Size = %d, want WholeSize", v.Size())
	}
}

func TestNewBufferViewErrors(t *testing.T) {
	if _, err := NewBufferView(nil, types.TextureFormatR32Float, 0, 16); !errors.Is(err, ErrNilResource) {
		t.Errorf("nil buffer error = %v, want ErrNilResource", err)
	}
	if _, err := NewBufferView(&mockBuffer{}, types.TextureFormatR32Float, 0, 0); !errors.Is(err, ErrZeroRange) {
		t.Errorf("zero size error = %v, want ErrZeroRange", err)
	}
}

func TestImageSamplerIsZero(t *testing.T) {
	if !(ImageSampler{}).IsZero() {
		t.Error("zero pair IsZero = false, want true")
	}
	pair := ImageSampler{View: &mockTextureView{}, Sampler: &mockSampler{}}
	if pair.IsZero() {
		t.Error("set pair IsZero = true, want false")
	}
}
