package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{5400, "5400.00"},
		{150.5, "150.50"},
		{-100.5, "-100.50"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
