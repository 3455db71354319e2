package phone

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"11912345678", "5511912345678"},
		{"(11) 91234-5678", "5511912345678"},
		{"+55 11 91234-5678", "5511912345678"},
		{"5511912345678", "5511912345678"},
		{"011 91234 5678", "5511912345678"},
		{"27 3322-1100", "552733221100"},
		{"(27) 3322-1100", "552733221100"},
		{"+55 (27) 3322-1100", "552733221100"},
	}

	for _, test := range tests {
		result, err := Normalize(test.input)
		if err != nil {
			t.Errorf("Normalize(%q) returned error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"", ErrEmpty},
		{"abc", ErrEmpty},
		{"123", ErrLength},
		{"119123456789012", ErrLength},
		{"10912345678", ErrAreaCode},
		{"2012345678", ErrAreaCode},
		{"11812345678", ErrSubscriber},
		{"1112345678", ErrSubscriber},
	}

	for _, test := range tests {
		_, err := Normalize(test.input)
		if err == nil {
			t.Errorf("Normalize(%q) succeeded, expected %v", test.input, test.err)
			continue
		}
		if !errors.Is(err, test.err) {
			t.Errorf("Normalize(%q) = %v, expected %v", test.input, err, test.err)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("(11) 91234-5678") {
		t.Error("expected valid mobile number")
	}
	if IsValid("not a phone") {
		t.Error("expected invalid input rejected")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5511912345678", "+55 (11) 91234-5678"},
		{"552733221100", "+55 (27) 3322-1100"},
	}

	for _, test := range tests {
		result, err := Format(test.input)
		if err != nil {
			t.Errorf("Format(%q) returned error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("Format(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}

	if _, err := Format("(11) 91234-5678"); !errors.Is(err, ErrNotNormalized) {
		t.Error("Format must reject non-normalized input")
	}
}

func TestChatID(t *testing.T) {
	if got := ChatID("5511912345678"); got != "5511912345678@c.us" {
		t.Errorf("ChatID = %q", got)
	}
}

func TestWALink(t *testing.T) {
	got := WALink("5511912345678", "Olá! Quero pedir um matcha latte")
	want := "https://wa.me/5511912345678?text=Ol%C3%A1%21+Quero+pedir+um+matcha+latte"
	if got != want {
		t.Errorf("WALink = %q, want %q", got, want)
	}

	if got := WALink("5511912345678", ""); got != "https://wa.me/5511912345678" {
		t.Errorf("WALink without message = %q", got)
	}
}
