package validation

import "testing"

func TestValidateEmail_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"user@example.com", "user@example.com"},
		{"  padded@example.com  ", "padded@example.com"},
		{"first.last@sub.domain.org", "first.last@sub.domain.org"},
		{"UPPER@Example.COM", "UPPER@Example.COM"},
	}
	for _, tc := range cases {
		res := ValidateEmail(tc.in)
		if !res.Valid {
			t.Errorf("ValidateEmail(%q) invalid: %s", tc.in, res.Message)
			continue
		}
		if res.Value != tc.want {
			t.Errorf("ValidateEmail(%q) = %q, want %q", tc.in, res.Value, tc.want)
		}
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"no-at-sign",
		"@missing-local.com",
		"missing-domain@",
		"no-dot@domain",
		"two@@ats.com",
		"dot-at-end@domain.",
		"spaces in@local.com",
	}
	for _, in := range cases {
		if res := ValidateEmail(in); res.Valid {
			t.Errorf("ValidateEmail(%q) unexpectedly valid", in)
		}
	}
}

func TestValidatePassword_RuleOrder(t *testing.T) {
	cases := []struct {
		name string
		in   string
		msg  string
	}{
		{"missing", "", "Password is required"},
		{"too short", "Ab1!", "Password must be at least 8 characters long"},
		{"no uppercase", "alllower1!", "Password must contain at least one uppercase letter"},
		{"no lowercase", "ALLUPPER1!", "Password must contain at least one lowercase letter"},
		{"no digit", "NoDigits!!", "Password must contain at least one number"},
		{"no special", "NoSpecial11", "Password must contain at least one special character (!@#$%^&*...)"},
	}
	for _, tc := range cases {
		res := ValidatePassword(tc.in)
		if res.Valid {
			t.Errorf("%s: ValidatePassword(%q) unexpectedly valid", tc.name, tc.in)
			continue
		}
		if res.Message != tc.msg {
			t.Errorf("%s: message = %q, want %q", tc.name, res.Message, tc.msg)
		}
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	for _, in := range []string{"Strong1!", "C0mpl3x_Pass", `Qu"oted9x`} {
		if res := ValidatePassword(in); !res.Valid {
			t.Errorf("ValidatePassword(%q) invalid: %s", in, res.Message)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		valid bool
		value string
		msg   string
	}{
		{"ok", "yoga_fan-1", true, "yoga_fan-1", ""},
		{"trimmed", "  alice  ", true, "alice", ""},
		{"minimum length", "abc", true, "abc", ""},
		{"missing", "", false, "", "Username is required"},
		{"too short", "ab", false, "", "Username must be at least 3 characters long"},
		{"too long", "a123456789012345678901234567890", false, "", "Username must not exceed 30 characters"},
		{"bad characters", "bad name!", false, "", "Username can only contain letters, numbers, underscores, and hyphens"},
	}
	for _, tc := range cases {
		res := ValidateUsername(tc.in)
		if res.Valid != tc.valid {
			t.Errorf("%s: valid = %v, want %v (%s)", tc.name, res.Valid, tc.valid, res.Message)
			continue
		}
		if tc.valid && res.Value != tc.value {
			t.Errorf("%s: value = %q, want %q", tc.name, res.Value, tc.value)
		}
		if !tc.valid && res.Message != tc.msg {
			t.Errorf("%s: message = %q, want %q", tc.name, res.Message, tc.msg)
		}
	}
}
