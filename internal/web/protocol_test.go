package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elbeejay/line-bridge-simulator/boundary"
)

func TestDecodeControl_Valid(t *testing.T) {
	msg, err := DecodeControl([]byte(`{"type":"start"}`))
	require.NoError(t, err)
	assert.Equal(t, TypeStart, msg.Type)
	assert.Nil(t, msg.Setup)

	msg, err = DecodeControl([]byte(`{"type":"reset","setup":{"width":400,"height":200,"margin":30,"minLength":10,"maxLength":50,"minAngle":0,"maxAngle":180,"mode":"top-to-bottom"}}`))
	require.NoError(t, err)
	assert.Equal(t, TypeReset, msg.Type)
	require.NotNil(t, msg.Setup)
	assert.Equal(t, 400.0, msg.Setup.Width)
	assert.Equal(t, "top-to-bottom", msg.Setup.Mode)
}

func TestDecodeControl_Rejects(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"malformed json", `{"type":`},
		{"unknown type", `{"type":"fast-forward"}`},
		{"empty type", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeControl([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestSimSetup_Config(t *testing.T) {
	cfg, err := DefaultSetup().Config()
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.Width)
	assert.Equal(t, 300.0, cfg.Height)
	assert.Equal(t, boundary.LeftToRight, cfg.Mode)
	assert.Equal(t, 40.0, cfg.Region.Min.X)
	assert.Equal(t, 460.0, cfg.Region.Max.X)
	assert.Equal(t, 260.0, cfg.Region.Max.Y)
	assert.Equal(t, 20.0, cfg.Params.MinLength)
}

func TestSimSetup_Config_BadMode(t *testing.T) {
	setup := DefaultSetup()
	setup.Mode = "diagonal"

	_, err := setup.Config()
	assert.ErrorIs(t, err, boundary.ErrUnknownMode)
}
