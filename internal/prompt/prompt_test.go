package prompt

import (
	"strings"
	"testing"
	"time"
)

var testDate = time.Date(1924, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestEventResearch(t *testing.T) {
	got := EventResearch(testDate)

	if strings.Contains(got, "{date}") {
		t.Error("unsubstituted {date} placeholder left in prompt")
	}
	if !strings.Contains(got, "June 15, 1924") {
		t.Error("prompt does not contain the formatted date")
	}
	if !strings.Contains(got, `"events"`) {
		t.Error("prompt does not describe the events array")
	}
	if !strings.Contains(got, "Return ONLY the JSON object") {
		t.Error("prompt does not pin the response to bare JSON")
	}

	// Чистая функция: одинаковые входы дают побайтно одинаковый результат.
	if again := EventResearch(testDate); again != got {
		t.Error("EventResearch is not deterministic")
	}
}

func TestAdditionalContext(t *testing.T) {
	got := AdditionalContext("the Paris Olympics", testDate)

	for _, placeholder := range []string{"{topic}", "{date}"} {
		if strings.Contains(got, placeholder) {
			t.Errorf("unsubstituted %s placeholder left in prompt", placeholder)
		}
	}
	if !strings.Contains(got, "the Paris Olympics") {
		t.Error("prompt does not contain the topic verbatim")
	}
	if !strings.Contains(got, "June 15, 1924") {
		t.Error("prompt does not contain the formatted date")
	}

	if again := AdditionalContext("the Paris Olympics", testDate); again != got {
		t.Error("AdditionalContext is not deterministic")
	}
}

func TestCinematicFootage(t *testing.T) {
	got := CinematicFootage("OLYMPICS OPEN IN PARIS", "athletes parading with national flags")

	if !strings.Contains(got, "OLYMPICS OPEN IN PARIS") {
		t.Error("prompt does not embed the event title")
	}
	if !strings.Contains(got, "athletes parading with national flags") {
		t.Error("prompt does not embed the scene description")
	}
	if strings.Contains(got, "{title}") || strings.Contains(got, "{prompt}") {
		t.Error("unsubstituted placeholder left in prompt")
	}
}
