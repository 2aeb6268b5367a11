package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "Zero Rupees Only"},
		{"1", "Rupees One Only"},
		{"15", "Rupees Fifteen Only"},
		{"100", "Rupees One Hundred Only"},
		{"1500", "Rupees One Thousand Five Hundred Only"},
		{"100000", "Rupees One Lakh Only"},
		{"150000", "Rupees One Lakh Fifty Thousand Only"},
		{"12345678", "Rupees One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{"10.50", "Rupees Ten and Fifty Paise Only"},
		{"0.75", "Rupees Zero and Seventy Five Paise Only"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, AmountInWords(d(tc.in)))
		})
	}
}

func TestPlaceOfSupply(t *testing.T) {
	assert.Equal(t, "Karnataka (29)", PlaceOfSupply("29ABCDE1234F1Z5"))
	assert.Equal(t, "Uttar Pradesh (09)", PlaceOfSupply(""))
	assert.Equal(t, "Uttar Pradesh (09)", PlaceOfSupply("99XYZ"))
}
