package x12

import (
	"testing"
	"time"
)

func TestBuildSegmentDropsTrailingEmpties(t *testing.T) {
	got := buildSegment("NM1", "41", "2", "ACME", "", "", "", "", "46", "")
	want := "NM1*41*2*ACME*****46~"
	if got != want {
		t.Errorf("buildSegment = %q, want %q", got, want)
	}
}

func TestBuildSegmentKeepsInteriorEmpties(t *testing.T) {
	got := buildSegment("HL", "1", "", "20", "1")
	want := "HL*1**20*1~"
	if got != want {
		t.Errorf("buildSegment = %q, want %q", got, want)
	}
}

func TestCleanTextStripsDelimiters(t *testing.T) {
	got := cleanText("  Smith*Home~Care:East^2\nLLC ")
	want := "SmithHomeCareEast2LLC"
	if got != want {
		t.Errorf("cleanText = %q, want %q", got, want)
	}
}

func TestDateFormsShareOneInstant(t *testing.T) {
	at := time.Date(2025, 6, 2, 14, 5, 0, 0, time.UTC)
	if got := formatDate(at); got != "20250602" {
		t.Errorf("formatDate = %q", got)
	}
	if got := formatShortDate(at); got != "250602" {
		t.Errorf("formatShortDate = %q", got)
	}
	if got := formatClock(at); got != "1405" {
		t.Errorf("formatClock = %q", got)
	}
}

func TestPadLeft(t *testing.T) {
	if got := padLeft("MCD01", 15); got != "          MCD01" {
		t.Errorf("padLeft = %q", got)
	}
	if got := padLeft("TOOLONGFORWIDTH", 5); got != "TOOLO" {
		t.Errorf("padLeft truncation = %q", got)
	}
}

func TestZeroPad(t *testing.T) {
	if got := zeroPad("42", 9); got != "000000042" {
		t.Errorf("zeroPad = %q", got)
	}
	if got := zeroPad("123456789", 9); got != "123456789" {
		t.Errorf("zeroPad full width = %q", got)
	}
}

func TestFormatPhone(t *testing.T) {
	if got := formatPhone("(555) 201-3344"); got != "5552013344" {
		t.Errorf("formatPhone = %q", got)
	}
	if got := formatPhone(""); got != "" {
		t.Errorf("formatPhone empty = %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(75.5); got != "75.50" {
		t.Errorf("formatAmount = %q", got)
	}
	if got := formatAmount(4); got != "4.00" {
		t.Errorf("formatAmount = %q", got)
	}
}
