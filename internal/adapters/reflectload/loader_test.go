package reflectload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/memload/internal/domain"
	"github.com/bft-labs/memload/internal/ports"
)

type handle struct{ image []byte }

type reflAsm struct{ h *handle }

func (r *reflAsm) Assembly() ports.Assembly { return r.h }

type evidence struct{}

type facility struct {
	calls    int
	symbols  []byte
	evidence *evidence
	err      error
	nilOut   bool
}

func (f *facility) Load(raw []byte, symbols []byte, ev *evidence) (*reflAsm, error) {
	f.calls++
	f.symbols = symbols
	f.evidence = ev
	if f.err != nil {
		return nil, f.err
	}
	if f.nilOut {
		return nil, nil
	}
	return &reflAsm{h: &handle{image: raw}}, nil
}

func (f *facility) Open(raw []byte) (*reflAsm, error)                { return nil, nil }
func (f *facility) Wrong(raw string, a, b []byte) (*reflAsm, error)  { return nil, nil }
func (f *facility) Plain(raw []byte, a, b []byte) string             { return "" }
func (f *facility) Extra(raw []byte, a, b []byte) (*reflAsm, int)    { return nil, 0 }
func (f *facility) NoErr(raw []byte, a []byte, b *evidence) *reflAsm { return &reflAsm{h: &handle{raw}} }

func TestLoader_PassesImageAndNullPlaceholders(t *testing.T) {
	f := &facility{symbols: []byte{1}, evidence: &evidence{}}
	l, err := New(f)
	require.NoError(t, err)

	image := []byte("MZ")
	got, err := l.LoadFromImage(ports.DomainRef(3), image)
	require.NoError(t, err)

	assert.Equal(t, 1, f.calls)
	assert.Nil(t, f.symbols)
	assert.Nil(t, f.evidence)
	h, ok := got.Assembly().(*handle)
	require.True(t, ok)
	assert.Equal(t, image, h.image)
}

func TestLoader_SingleResult(t *testing.T) {
	l, err := NewMethod(&facility{}, "NoErr")
	require.NoError(t, err)

	got, err := l.LoadFromImage(ports.DomainRef(1), []byte("MZ"))
	require.NoError(t, err)
	assert.NotNil(t, got.Assembly())
}

func TestLoader_PropagatesError(t *testing.T) {
	boom := errors.New("bad image format")
	l, err := New(&facility{err: boom})
	require.NoError(t, err)

	_, err = l.LoadFromImage(ports.DomainRef(1), []byte("MZ"))
	require.ErrorIs(t, err, boom)
}

func TestLoader_NilResult(t *testing.T) {
	l, err := New(&facility{nilOut: true})
	require.NoError(t, err)

	_, err = l.LoadFromImage(ports.DomainRef(1), []byte("MZ"))
	require.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestNewMethod_RejectsBadShapes(t *testing.T) {
	tests := []struct {
		name     string
		facility any
		method   string
	}{
		{"nil facility", nil, "Load"},
		{"missing method", &facility{}, "Missing"},
		{"wrong arity", &facility{}, "Open"},
		{"first parameter not bytes", &facility{}, "Wrong"},
		{"result not an assembly", &facility{}, "Plain"},
		{"second result not error", &facility{}, "Extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMethod(tt.facility, tt.method)
			assert.ErrorIs(t, err, ErrBadMethod)
		})
	}
}
