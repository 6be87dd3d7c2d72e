package assistant

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "KSh 0"},
		{"950", "KSh 950"},
		{"12000", "KSh 12,000"},
		{"1234567", "KSh 1,234,567"},
		{"12000.75", "KSh 12,001"},
		{"-45000", "KSh -45,000"},
	}
	for _, tc := range cases {
		if got := formatMoney(money(tc.in)); got != tc.want {
			t.Fatalf("formatMoney(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
