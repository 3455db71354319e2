package services

import (
	"testing"

	"brewlocal/pkg/models"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{900, "R$ 9,00"},
		{1850, "R$ 18,50"},
		{5, "R$ 0,05"},
		{100000, "R$ 1000,00"},
	}

	for _, test := range tests {
		if got := FormatPrice(test.cents); got != test.expected {
			t.Errorf("FormatPrice(%d) = %q, expected %q", test.cents, got, test.expected)
		}
	}
}

func TestBuildOrderMessage(t *testing.T) {
	listing := &models.Listing{Name: "Matcha Latte", PriceCents: 1800}

	got := BuildOrderMessage(listing, models.OrderRequest{})
	want := "Olá! Vi o item *Matcha Latte* (R$ 18,00) no brewlocal e gostaria de pedir 1x."
	if got != want {
		t.Errorf("BuildOrderMessage = %q, expected %q", got, want)
	}

	got = BuildOrderMessage(listing, models.OrderRequest{Quantity: 3, Note: "sem açúcar"})
	want = "Olá! Vi o item *Matcha Latte* (R$ 18,00) no brewlocal e gostaria de pedir 3x. Obs: sem açúcar"
	if got != want {
		t.Errorf("BuildOrderMessage with note = %q, expected %q", got, want)
	}
}
