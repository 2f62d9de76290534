package render

import (
	"testing"
	"time"
)

func TestOrdinalDay(t *testing.T) {
	cases := map[int]string{
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		11: "11th",
		12: "12th",
		13: "13th",
		21: "21st",
		22: "22nd",
		23: "23rd",
		30: "30th",
		31: "31st",
	}
	for day, want := range cases {
		if got := OrdinalDay(day); got != want {
			t.Fatalf("day %d expected %s, got %s", day, want, got)
		}
	}
}

func TestShortDate(t *testing.T) {
	if got := ShortDate(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)); got != "Feb 3rd" {
		t.Fatalf("expected Feb 3rd, got %s", got)
	}
	if got := ShortDate(time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC)); got != "Aug 22nd" {
		t.Fatalf("expected Aug 22nd, got %s", got)
	}
	if got := ShortDate(time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC)); got != "Apr 11th" {
		t.Fatalf("expected Apr 11th, got %s", got)
	}
}
