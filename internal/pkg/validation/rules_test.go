package validation

import "testing"

func TestIsBlank(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"a", false},
		{" a ", false},
	}

	for _, tc := range cases {
		if got := IsBlank(tc.value); got != tc.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.co.uk",
		"user+tag@example.org",
		"u_1-2%3@sub.example.com",
	}
	for _, v := range valid {
		if !IsValidEmail(v) {
			t.Errorf("expected %q to be valid", v)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user example@example.com",
	}
	for _, v := range invalid {
		if IsValidEmail(v) {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestIsValidCredit(t *testing.T) {
	if IsValidCredit(0) {
		t.Error("zero credit must be rejected")
	}
	if IsValidCredit(-1) {
		t.Error("negative credit must be rejected")
	}
	if !IsValidCredit(1) {
		t.Error("one credit must be accepted")
	}
	if !IsValidCredit(10) {
		t.Error("ten credits must be accepted")
	}
}

func TestIsValidTuition(t *testing.T) {
	if !IsValidTuition(0) {
		t.Error("zero tuition must be accepted")
	}
	if !IsValidTuition(1999.99) {
		t.Error("positive tuition must be accepted")
	}
	if IsValidTuition(-0.01) {
		t.Error("negative tuition must be rejected")
	}
}
