package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/pkg/rut"
)

func TestNormalize_FormatosAceptados(t *testing.T) {
	cases := map[string]string{
		"12.345.678-5": "12345678-5",
		"12345678-5":   "12345678-5",
		"123456785":    "12345678-5",
		" 7.654.321-6": "7654321-6",
		"10.000.013-k": "10000013-K",
		"010000013K":   "10000013-K",
		"76.000.000-0": "76000000-0",
	}
	for in, want := range cases {
		got, err := rut.Normalize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNormalize_Rechazos(t *testing.T) {
	for _, in := range []string{"", "12.345.678-4", "1234", "12A45678-5", "12.345.678-X"} {
		_, err := rut.Normalize(in)
		assert.Error(t, err, in)
		assert.False(t, rut.Valid(in), in)
	}
}

func TestComputeDV(t *testing.T) {
	dv, err := rut.ComputeDV("11.111.111")
	require.NoError(t, err)
	assert.Equal(t, byte('1'), dv)

	dv, err = rut.ComputeDV("10000013")
	require.NoError(t, err)
	assert.Equal(t, byte('K'), dv)

	_, err = rut.ComputeDV("123")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	got, err := rut.Format("123456785")
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5", got)

	got, err = rut.Format("7654321-6")
	require.NoError(t, err)
	assert.Equal(t, "7.654.321-6", got)
}
