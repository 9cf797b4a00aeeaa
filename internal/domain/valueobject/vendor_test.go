package valueobject

import "testing"

func TestNormalizeVendor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "whitespace only", input: "   \t ", expected: ""},
		{name: "already canonical", input: "TWILIO", expected: "TWILIO"},
		{name: "lowercased input", input: "twilio", expected: "TWILIO"},
		{name: "edge whitespace", input: "  Starbucks  ", expected: "STARBUCKS"},
		{name: "paypal star prefix", input: "PAYPAL *TWILIO", expected: "TWILIO"},
		{name: "paypal word prefix", input: "PAYPAL STRIPE", expected: "STRIPE"},
		{name: "square prefix", input: "SQ *COFFEE SHOP", expected: "COFFEE SHOP"},
		{name: "stacked prefixes", input: "PAYPAL *SQ *COFFEE SHOP", expected: "COFFEE SHOP"},
		{name: "punctuation stripped", input: "CHICK-FIL-A #0421", expected: "CHICK FIL A"},
		{name: "trailing reference number", input: "TWILIO 8844123", expected: "TWILIO"},
		{name: "short digits kept", input: "FIVE GUYS 42", expected: "FIVE GUYS 42"},
		{name: "internal whitespace collapsed", input: "DELTA   AIR    LINES", expected: "DELTA AIR LINES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeVendor(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeVendor(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeVendorIdempotent(t *testing.T) {
	inputs := []string{
		"PAYPAL *TWILIO",
		"SQ *COFFEE SHOP #1234",
		"  chick-fil-a #0421  ",
		"PAYPAL *SQ *UBER   TRIP 9912345",
		"",
	}

	for _, input := range inputs {
		once := NormalizeVendor(input)
		twice := NormalizeVendor(once)
		if once != twice {
			t.Errorf("NormalizeVendor not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestExtractVendorFromGroupName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "standard suffix", input: "TWILIO (3 charges)", expected: "TWILIO"},
		{name: "no suffix", input: "TWILIO", expected: "TWILIO"},
		{name: "empty string", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
		{name: "spaces inside parentheses", input: "TWILIO ( 3 charges )", expected: "TWILIO"},
		{name: "single charge", input: "GODADDY (1 charge)", expected: "GODADDY"},
		{name: "no space before word", input: "UBER (12charges)", expected: "UBER"},
		{name: "trailing whitespace after suffix", input: "UBER (2 charges)  ", expected: "UBER"},
		{name: "annotation not at end kept", input: "(3 charges) TWILIO", expected: "(3 charges) TWILIO"},
		{name: "internal text untouched", input: "Ben & Jerry's (2 charges)", expected: "Ben & Jerry's"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractVendorFromGroupName(tt.input)
			if got != tt.expected {
				t.Errorf("ExtractVendorFromGroupName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
