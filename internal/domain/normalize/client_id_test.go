package normalize

import (
	"testing"
	"time"
)

func TestGenerateClientID(t *testing.T) {
	date := time.Date(2025, time.March, 5, 15, 4, 0, 0, time.UTC)

	if got := GenerateClientID("Ana Silva", "West End", date); got != "0503AnaSilvaWestEnd" {
		t.Fatalf("expected 0503AnaSilvaWestEnd, got %q", got)
	}
	if got := GenerateClientID("  Jo\tão ", "North\n Side", date); got != "0503JoãoNorthSide" {
		t.Fatalf("expected whitespace stripped, got %q", got)
	}

	late := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	if got := GenerateClientID("Bo", "Oeste", late); got != "3112BoOeste" {
		t.Fatalf("expected 3112BoOeste, got %q", got)
	}
}
