package rostererrors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "plain",
			err:  New(ErrorTypeData, "no business lines"),
			want: "data: no business lines",
		},
		{
			name: "details sorted",
			err:  New(ErrorTypeData, "empty pool").WithDetail("table", "cost_centers").WithDetail("business_line", "Legal"),
			want: "data: empty pool (business_line=Legal, table=cost_centers)",
		},
		{
			name: "with cause",
			err:  Wrap(io.ErrUnexpectedEOF, ErrorTypeFile, "failed to write roster"),
			want: "file: failed to write roster: unexpected EOF",
		},
		{
			name: "formatted",
			err:  Newf(ErrorTypeValidation, "count %d exceeds %d", 10, 5),
			want: "validation: count 10 exceeds 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeFile, "ignored"))
}

func TestWrap_PreservesChain(t *testing.T) {
	err := Wrap(io.EOF, ErrorTypeFile, "read header")
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, io.EOF))

	outer := fmt.Errorf("inspect: %w", err)
	var target *Error
	require.True(t, errors.As(outer, &target))
	assert.Equal(t, ErrorTypeFile, target.Type)
}

func TestIsType(t *testing.T) {
	inner := New(ErrorTypeExhausted, "no free id")
	outer := Wrap(inner, ErrorTypeData, "generate record")

	assert.True(t, IsType(outer, ErrorTypeData))
	assert.True(t, IsType(outer, ErrorTypeExhausted))
	assert.False(t, IsType(outer, ErrorTypeFile))
	assert.False(t, IsType(io.EOF, ErrorTypeFile))
	assert.False(t, IsType(nil, ErrorTypeFile))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrorTypeConfig, TypeOf(fmt.Errorf("load: %w", New(ErrorTypeConfig, "bad"))))
	assert.Equal(t, ErrorType(""), TypeOf(io.EOF))
}
