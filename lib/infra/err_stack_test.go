package infra

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFrameFormat(t *testing.T) {
	es := NewErrorStack("root")
	frames := es.Frames()
	require.NotEmpty(t, frames)

	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{frames[0], "%s", "err_stack_test.go"},
		{frames[0], "%n", "TestFrameFormat"},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
		{Frame(0), "%v", "unknownFile:0"},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.want, fmt.Sprintf(tc.format, tc.Frame))
	}

	full := fmt.Sprintf("%+s", frames[0])
	require.True(t, strings.HasPrefix(full, "github.com/benz9527/xunrolled/lib/infra.TestFrameFormat\n\t"))
	require.True(t, strings.HasSuffix(full, "err_stack_test.go"))
}

func TestFrameMarshalText(t *testing.T) {
	_bytes, err := Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(_bytes))

	es := NewErrorStack("root")
	_bytes, err = es.Frames()[0].MarshalText()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(_bytes), "github.com/benz9527/xunrolled/lib/infra.TestFrameMarshalText "))
	require.Contains(t, string(_bytes), "err_stack_test.go:")
}

func TestWrapErrorStackWithMessage(t *testing.T) {
	require.Nil(t, WrapErrorStackWithMessage(nil, "nothing"))

	cause := errors.New("cause")
	es := WrapErrorStackWithMessage(cause, "wrapped")
	require.Error(t, es)
	require.Equal(t, "wrapped: cause", es.Error())
	require.ErrorIs(t, es, cause)
	require.Equal(t, "TestWrapErrorStackWithMessage", fmt.Sprintf("%n", es.Frames()[0]))

	require.Equal(t, "cause", WrapErrorStackWithMessage(cause, "").Error())
	require.Equal(t, "root", NewErrorStack("root").Error())
}

func TestErrorStackAsZapObject(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	es := WrapErrorStackWithMessage(errors.New("cause"), "wrapped")
	logger.Error("failed", zap.Inline(es))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "wrapped: cause", fields["error"])
	stack, ok := fields["errorStack"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, stack)
	require.Contains(t, stack[0], "TestErrorStackAsZapObject")
}
