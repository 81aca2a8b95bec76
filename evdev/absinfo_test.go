package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temoto/goevdev/evdev/evcodes"
)

func TestAbsScalarAccessorsDefaultToZero(t *testing.T) {
	m := New()
	assert.Zero(t, m.GetAbsMinimum(evcodes.ABS_X))
	assert.Zero(t, m.GetAbsMaximum(evcodes.ABS_X))
}

func TestGetAbsInfoNotPresentSentinel(t *testing.T) {
	m := New()
	_, ok := m.GetAbsInfo(evcodes.ABS_X)
	assert.False(t, ok, "GetAbsInfo on an unsupported code must report not-present")

	info := AbsInfo{Minimum: -100, Maximum: 100, Fuzz: 2}
	require.NoError(t, m.EnableCode(evcodes.EV_ABS, evcodes.ABS_X, &info, nil))

	got, ok := m.GetAbsInfo(evcodes.ABS_X)
	require.True(t, ok)
	assert.Equal(t, info, got)
	assert.EqualValues(t, 2, m.GetAbsFuzz(evcodes.ABS_X))
}

func TestSetAbsInfoFailsWhenNotEnabled(t *testing.T) {
	m := New()
	assert.Error(t, m.SetAbsInfo(evcodes.ABS_X, AbsInfo{}), "SetAbsInfo on a disabled code must fail")
}
