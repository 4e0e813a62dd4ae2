package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"coca  cola", "Coca Cola"},
		{"  BEBIDAS frías ", "Bebidas Frías"},
		// una letra tras un dígito abre palabra nueva
		{"rice 2kg", "Rice 2Kg"},
		{"sugar 1kg pack", "Sugar 1Kg Pack"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, titleName(tc.in), "titleName(%q)", tc.in)
	}
}

func TestNormalizeKenyanContact(t *testing.T) {
	got, err := normalizeKenyanContact(" 0712345678 ")
	assert.NoError(t, err)
	assert.Equal(t, "+254712345678", got)

	got, err = normalizeKenyanContact("")
	assert.NoError(t, err)
	assert.Empty(t, got)

	_, err = normalizeKenyanContact("12345")
	assert.Error(t, err)
}
