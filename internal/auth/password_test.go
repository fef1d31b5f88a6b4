package auth

import "testing"

func TestCheckPassword(t *testing.T) {
	if !CheckPassword("2340", "1000") {
		t.Fatalf("expected 2340 to unlock password 1000")
	}
	if CheckPassword("2339", "1000") {
		t.Fatalf("expected 2339 to be rejected")
	}
	if CheckPassword("1000", "1000") {
		t.Fatalf("the stored value itself must not unlock")
	}
}

func TestCheckPasswordUnusableConfiguredValue(t *testing.T) {
	for _, configured := range []string{"abc", "-5", "", "1e3"} {
		for _, input := range []string{"-1", "0", "1", "2340"} {
			if CheckPassword(input, configured) {
				t.Fatalf("CheckPassword(%q, %q) should never match", input, configured)
			}
		}
	}
}

func TestVerifyOutcomes(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		configured string
		want       Outcome
	}{
		{"match", "2340", "1000", Matched},
		{"match with spaces", " 2340 ", "1000", Matched},
		{"mismatch", "1", "1000", Mismatch},
		{"not a number", "two", "1000", NotANumber},
		{"empty input", "", "1000", NotANumber},
		{"unusable password", "-1", "oops", PasswordUnusable},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Verify(tc.input, tc.configured); got != tc.want {
				t.Fatalf("Verify(%q, %q) = %s, want %s", tc.input, tc.configured, got, tc.want)
			}
		})
	}
}

func TestOutcomeMessages(t *testing.T) {
	if NotANumber.Message() != "Enter a valid number" {
		t.Fatalf("unexpected NotANumber message %q", NotANumber.Message())
	}
	if Mismatch.Message() != PasswordUnusable.Message() {
		t.Fatalf("unusable password should read as an incorrect password")
	}
	if Matched.Message() != "" {
		t.Fatalf("Matched should have no message")
	}
}
