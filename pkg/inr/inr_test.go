package inr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Run("crore band", func(t *testing.T) {
		assert.Equal(t, "INR 2.50 Cr", Format(25000000))
		assert.Equal(t, "INR 1.00 Cr", Format(10000000))
		assert.Equal(t, "INR 80.00 Cr", Format(800000000))
		assert.Equal(t, "INR 1.50 Cr", Format(15000000))
	})

	t.Run("lakh band", func(t *testing.T) {
		assert.Equal(t, "INR 1.50 L", Format(150000))
		assert.Equal(t, "INR 1.00 L", Format(100000))
		assert.Equal(t, "INR 99.99 L", Format(9999000))
	})

	t.Run("grouped integer band", func(t *testing.T) {
		assert.Equal(t, "INR 5,000", Format(5000))
		assert.Equal(t, "INR 1,234", Format(1234))
		assert.Equal(t, "INR 12,345", Format(12345))
		assert.Equal(t, "INR 99,999", Format(99999))
		assert.Equal(t, "INR 500", Format(500))
		assert.Equal(t, "INR 0", Format(0))
	})

	t.Run("band boundaries", func(t *testing.T) {
		// One below each boundary stays in the lower band.
		assert.Equal(t, "INR 99.99 L", Format(9999999))
		assert.Equal(t, "INR 1.00 L", Format(100000))
		assert.Equal(t, "INR 99,999", Format(99999))
	})

	t.Run("fractional amounts truncate in grouped band", func(t *testing.T) {
		assert.Equal(t, "INR 5,000", Format(5000.75))
	})
}

func TestFormatString(t *testing.T) {
	t.Run("numeric strings", func(t *testing.T) {
		assert.Equal(t, "INR 2.50 Cr", FormatString("25000000"))
		assert.Equal(t, "INR 1.50 L", FormatString("150000"))
		assert.Equal(t, "INR 5,000", FormatString("5000"))
		assert.Equal(t, "INR 12,345", FormatString(" 12345 "))
	})

	t.Run("non-numeric input returned unchanged", func(t *testing.T) {
		assert.Equal(t, "50 Lakhs", FormatString("50 Lakhs"))
		assert.Equal(t, "2.00 Crore", FormatString("2.00 Crore"))
		assert.Equal(t, "", FormatString(""))
	})
}

func TestGroupIndian(t *testing.T) {
	cases := map[int64]string{
		1:        "1",
		123:      "123",
		1234:     "1,234",
		12345:    "12,345",
		123456:   "1,23,456",
		1234567:  "12,34,567",
		12345678: "1,23,45,678",
	}
	for n, want := range cases {
		assert.Equal(t, want, groupIndian(n), "groupIndian(%d)", n)
	}
}
