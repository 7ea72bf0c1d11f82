package descset

import (
	"errors"
	"testing"

	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

func TestNewBufferWrite(t *testing.T) {
	buf := &mockBuffer{label: "ubo"}

	w, err := NewBufferWrite(3, 1, buf)
	if err != nil {
		t.Fatalf("NewBufferWrite failed: %v", err)
	}
	if w.Binding() != 3 {
		t.Errorf("Binding = %d, want 3", w.Binding())
	}
	if w.FirstElement() != 1 {
		t.Errorf("FirstElement = %d, want 1", w.FirstElement())
	}
	if w.Kind() != BindingKindBuffer {
		t.Errorf("Kind = %s, want Buffer", w.Kind())
	}
	if w.Count() != 1 {
		t.Errorf("Count = %d, want 1", w.Count())
	}
	if w.Buffers()[0] != hal.Buffer(buf) {
		t.Error("Buffers()[0] is not the written handle")
	}
}

func TestNewWriteEmpty(t *testing.T) {
	if _, err := NewBufferWrite(0, 0); !errors.Is(err, ErrEmptyWrite) {
		t.Errorf("NewBufferWrite() error = %v, want ErrEmptyWrite", err)
	}
	if _, err := NewSamplerWrite(0, 0); !errors.Is(err, ErrEmptyWrite) {
		t.Errorf("NewSamplerWrite() error = %v, want ErrEmptyWrite", err)
	}
	if _, err := NewImageViewSamplerWrite(0, 0); !errors.Is(err, ErrEmptyWrite) {
		t.Errorf("NewImageViewSamplerWrite() error = %v, want ErrEmptyWrite", err)
	}
}

func TestNewWriteNilResource(t *testing.T) {
	if _, err := NewBufferWrite(0, 0, nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("NewBufferWrite(nil) error = %v, want ErrNilResource", err)
	}
	if _, err := NewImageViewWrite(0, 0, &mockTextureView{}, nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("NewImageViewWrite(view, nil) error = %v, want ErrNilResource", err)
	}
	if _, err := NewBufferViewWrite(0, 0, nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("NewBufferViewWrite(nil) error = %v, want ErrNilResource", err)
	}

	// A pair with either half missing is rejected.
	half := ImageSampler{View: &mockTextureView{}}
	if _, err := NewImageViewSamplerWrite(0, 0, half); !errors.Is(err, ErrNilResource) {
		t.Errorf("NewImageViewSamplerWrite(half pair) error = %v, want ErrNilResource", err)
	}
}

func TestNewWriteCopiesPayload(t *testing.T) {
	views := []hal.TextureView{&mockTextureView{label: "a"}, &mockTextureView{label: "b"}}

	w, err := NewImageViewWrite(0, 0, views...)
	if err != nil {
		t.Fatalf("NewImageViewWrite failed: %v", err)
	}

	views[0] = &mockTextureView{label: "swapped"}
	if got := w.ImageViews()[0].(*mockTextureView).label; got != "a" {
		t.Errorf("ImageViews()[0].label = %q, want %q", got, "a")
	}
}

func TestWriteKinds(t *testing.T) {
	view, err := NewBufferView(&mockBuffer{}, types.TextureFormatRGBA8Unorm, 0, 256)
	if err != nil {
		t.Fatalf("NewBufferView failed: %v", err)
	}
	pair := ImageSampler{View: &mockTextureView{}, Sampler: &mockSampler{}}

	tests := []struct {
		name string
		make func() (*Write, error)
		want BindingKind
	}{
		{"buffer", func() (*Write, error) {
			return NewBufferWrite(0, 0, &mockBuffer{})
		}, BindingKindBuffer},
		{"buffer view", func() (*Write, error) {
			return NewBufferViewWrite(0, 0, view)
		}, BindingKindBufferView},
		{"image view", func() (*Write, error) {
			return NewImageViewWrite(0, 0, &mockTextureView{})
		}, BindingKindImageView},
		{"image view sampler", func() (*Write, error) {
			return NewImageViewSamplerWrite(0, 0, pair)
		}, BindingKindImageViewSampler},
		{"sampler", func() (*Write, error) {
			return NewSamplerWrite(0, 0, &mockSampler{})
		}, BindingKindSampler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.make()
			if err != nil {
				t.Fatalf("constructor failed: %v", err)
			}
			if w.Kind() != tt.want {
				t.Errorf("Kind = %s, want %s", w.Kind(), tt.want)
			}
			if w.Count() != 1 {
				t.Errorf("Count = %d, want 1", w.Count())
			}
		})
	}
}
