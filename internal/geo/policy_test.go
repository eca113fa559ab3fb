package geo

import (
	"net/http"
	"testing"
)

func newTestEvaluator() *Evaluator {
	return NewEvaluator([]string{"US", "gb", " De "}, "x-geo-block")
}

func TestEvaluateBlockedCountryCaseInsensitive(t *testing.T) {
	evaluator := newTestEvaluator()

	for _, value := range []string{"US", "us", "Us"} {
		header := http.Header{}
		header.Set("cf-ipcountry", value)
		decision := evaluator.Evaluate(header)
		if !decision.Blocked {
			t.Fatalf("country %q should be blocked", value)
		}
		if decision.Country != "US" {
			t.Fatalf("country should normalize to US, got %q", decision.Country)
		}
	}
}

func TestEvaluateAllowedCountry(t *testing.T) {
	evaluator := newTestEvaluator()
	header := http.Header{}
	header.Set("cf-ipcountry", "CA")

	decision := evaluator.Evaluate(header)
	if decision.Blocked {
		t.Fatalf("CA should not be blocked")
	}
	if decision.Country != "CA" {
		t.Fatalf("unexpected country: %q", decision.Country)
	}
}

func TestEvaluateAbsentCountryFailsOpen(t *testing.T) {
	evaluator := newTestEvaluator()

	decision := evaluator.Evaluate(http.Header{})
	if decision.Blocked {
		t.Fatalf("absent country should not block")
	}
	if decision.Country != "" {
		t.Fatalf("expected empty country, got %q", decision.Country)
	}
}

func TestEvaluateHeaderPrecedence(t *testing.T) {
	evaluator := newTestEvaluator()
	header := http.Header{}
	header.Set("cf-ipcountry", "CA")
	header.Set("x-country", "US")

	decision := evaluator.Evaluate(header)
	if decision.Blocked {
		t.Fatalf("cf-ipcountry should win over x-country")
	}
	if decision.Country != "CA" {
		t.Fatalf("unexpected country: %q", decision.Country)
	}

	fallback := http.Header{}
	fallback.Set("x-country", "US")
	decision = evaluator.Evaluate(fallback)
	if !decision.Blocked {
		t.Fatalf("x-country fallback should block US")
	}
}

func TestEvaluateOverrideHeader(t *testing.T) {
	evaluator := newTestEvaluator()

	for _, value := range []string{"1", "true", "TRUE"} {
		header := http.Header{}
		header.Set("x-geo-block", value)
		decision := evaluator.Evaluate(header)
		if !decision.Blocked {
			t.Fatalf("override %q should block", value)
		}
		if decision.Reason != "test_override" {
			t.Fatalf("unexpected reason: %q", decision.Reason)
		}
	}

	header := http.Header{}
	header.Set("x-geo-block", "0")
	header.Set("cf-ipcountry", "CA")
	if decision := evaluator.Evaluate(header); decision.Blocked {
		t.Fatalf("override value 0 should not block")
	}
}

func TestIsBlockedCountry(t *testing.T) {
	evaluator := newTestEvaluator()
	if !evaluator.IsBlockedCountry("de") {
		t.Fatalf("de should be blocked")
	}
	if evaluator.IsBlockedCountry("") {
		t.Fatalf("blank code should not be blocked")
	}
	if evaluator.IsBlockedCountry("SE") {
		t.Fatalf("SE should not be blocked")
	}
}
