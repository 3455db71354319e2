// Package phone normalizes Brazilian phone numbers into the bare-digit
// E.164 form used for storage and WhatsApp addressing.
package phone

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const countryCode = "55"

var (
	ErrEmpty         = errors.New("phone number is empty")
	ErrLength        = errors.New("phone number has an invalid length")
	ErrAreaCode      = errors.New("invalid area code")
	ErrSubscriber    = errors.New("invalid subscriber number")
	ErrNotNormalized = errors.New("phone number is not in normalized form")
)

// Normalize converts free-form input ("(11) 91234-5678", "+55 11 91234 5678",
// "011912345678") into the canonical digit string "5511912345678". It accepts
// an optional +55 country prefix and an optional leading long-distance zero.
// Mobile numbers have nine subscriber digits starting with 9; landlines have
// eight starting with 2 through 5.
func Normalize(raw string) (string, error) {
	digits := digitsOnly(raw)
	if digits == "" {
		return "", ErrEmpty
	}

	// Strip an existing country prefix.
	if strings.HasPrefix(digits, countryCode) && len(digits) >= 12 {
		digits = digits[len(countryCode):]
	}

	// Strip the long-distance dialing zero ("011 ...").
	if strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}

	if len(digits) != 10 && len(digits) != 11 {
		return "", ErrLength
	}

	area := digits[:2]
	subscriber := digits[2:]

	if area[0] == '0' || area[1] == '0' {
		return "", ErrAreaCode
	}

	switch len(subscriber) {
	case 9:
		if subscriber[0] != '9' {
			return "", fmt.Errorf("%w: nine-digit numbers must start with 9", ErrSubscriber)
		}
	case 8:
		if subscriber[0] < '2' || subscriber[0] > '5' {
			return "", fmt.Errorf("%w: eight-digit numbers must start with 2-5", ErrSubscriber)
		}
	}

	return countryCode + area + subscriber, nil
}

// IsValid reports whether raw normalizes successfully.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

// Format renders a normalized number for display: "+55 (11) 91234-5678".
func Format(normalized string) (string, error) {
	if !isNormalized(normalized) {
		return "", ErrNotNormalized
	}
	area := normalized[2:4]
	subscriber := normalized[4:]
	split := len(subscriber) - 4
	return fmt.Sprintf("+%s (%s) %s-%s", countryCode, area, subscriber[:split], subscriber[split:]), nil
}

// ChatID returns the WhatsApp transport identifier for a normalized number.
func ChatID(normalized string) string {
	return normalized + "@c.us"
}

// WALink builds a wa.me deep link with an optional prefilled message.
func WALink(normalized, message string) string {
	link := "https://wa.me/" + normalized
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

func isNormalized(s string) bool {
	if len(s) != 12 && len(s) != 13 {
		return false
	}
	if !strings.HasPrefix(s, countryCode) {
		return false
	}
	return digitsOnly(s) == s
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
