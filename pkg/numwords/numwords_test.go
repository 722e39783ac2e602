package numwords

import "testing"

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{
			name:   "zero",
			amount: 0,
			want:   "zero only",
		},
		{
			name:   "single digit",
			amount: 7,
			want:   "seven only",
		},
		{
			name:   "teens",
			amount: 14,
			want:   "fourteen only",
		},
		{
			name:   "round tens",
			amount: 90,
			want:   "ninety only",
		},
		{
			name:   "hundreds",
			amount: 350,
			want:   "three hundred fifty only",
		},
		{
			name:   "all groups populated",
			amount: 123456789,
			want:   "twelve crore thirty four lakh fifty six thousand seven hundred eighty nine only",
		},
		{
			name:   "interior zero groups skipped",
			amount: 100000000,
			want:   "ten crore only",
		},
		{
			name:   "lakh with zero thousands",
			amount: 500042,
			want:   "five lakh forty two only",
		},
		{
			name:   "max nine digits",
			amount: 999999999,
			want:   "ninety nine crore ninety nine lakh ninety nine thousand nine hundred ninety nine only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.amount); got != tt.want {
				t.Errorf("Convert(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestConvertOverflow(t *testing.T) {
	// Ten decimal digits must return the sentinel, not an error or panic.
	if got := Convert(1000000000); got != Overflow {
		t.Errorf("Convert(1000000000) = %q, want %q", got, Overflow)
	}
	if got := Convert(9876543210); got != Overflow {
		t.Errorf("Convert(9876543210) = %q, want %q", got, Overflow)
	}
}

func TestConvertNegative(t *testing.T) {
	if got := Convert(-1); got != Overflow {
		t.Errorf("Convert(-1) = %q, want %q", got, Overflow)
	}
}
