package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestNonNegativeIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "0")
	if got := nonNegativeIntEnvOrDefault("INT_TEST", 1); got != 0 {
		t.Fatalf("expected explicit zero to be honored, got %d", got)
	}

	t.Setenv("INT_TEST", "-2")
	if got := nonNegativeIntEnvOrDefault("INT_TEST", 1); got != 1 {
		t.Fatalf("expected default on negative value, got %d", got)
	}

	t.Setenv("INT_TEST", "junk")
	if got := nonNegativeIntEnvOrDefault("INT_TEST", 1); got != 1 {
		t.Fatalf("expected default on junk value, got %d", got)
	}
}

func TestIntEnvOrDefaultRejectsNonPositive(t *testing.T) {
	t.Setenv("INT_TEST", "0")
	if got := intEnvOrDefault("INT_TEST", 8); got != 8 {
		t.Fatalf("expected default on zero, got %d", got)
	}
}
