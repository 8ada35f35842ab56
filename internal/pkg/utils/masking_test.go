package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "12345678900", OnlyDigits("123.456.789-00"))
	assert.Equal(t, "11987654321", OnlyDigits("(11) 98765-4321"))
	assert.Equal(t, "", OnlyDigits("abc"))
	assert.Equal(t, "2026", OnlyDigits("year 2026"))
}

func TestMaskCPF(t *testing.T) {
	t.Run("Formats eleven digits", func(t *testing.T) {
		assert.Equal(t, "123.456.789-00", MaskCPF("12345678900"))
	})

	t.Run("Already masked input is normalized", func(t *testing.T) {
		assert.Equal(t, "123.456.789-00", MaskCPF("123.456.789-00"))
	})

	t.Run("Wrong length comes back unchanged", func(t *testing.T) {
		assert.Equal(t, "1234567890", MaskCPF("1234567890"))
		assert.Equal(t, "", MaskCPF(""))
	})
}

func TestMaskPhone(t *testing.T) {
	t.Run("Eleven digit mobile", func(t *testing.T) {
		assert.Equal(t, "(11) 98765-4321", MaskPhone("11987654321"))
	})

	t.Run("Ten digit landline", func(t *testing.T) {
		assert.Equal(t, "(11) 8765-4321", MaskPhone("1187654321"))
	})

	t.Run("Wrong length comes back unchanged", func(t *testing.T) {
		assert.Equal(t, "123", MaskPhone("123"))
	})
}

func TestMaskingRoundTrip(t *testing.T) {
	// The form shows the masked value and the backend receives digits only.
	masked := MaskCPF("12345678900")
	assert.Equal(t, "12345678900", OnlyDigits(masked))

	maskedPhone := MaskPhone("11987654321")
	assert.Equal(t, "11987654321", OnlyDigits(maskedPhone))
}
