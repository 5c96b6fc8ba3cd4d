package validation

import (
	"strings"
	"testing"
)

// TestConfigValidator_AllPass verifies a fully valid chain returns nil
func TestConfigValidator_AllPass(t *testing.T) {
	err := NewConfigValidator("Test").
		Required("Name", "value").
		PositiveInt("Count", 5).
		IntRange("Port", 8080, 1, 65535).
		PositiveFloat("Threshold", 0.5).
		NonNegativeFloat("Gap", 0).
		FloatAbove("Ratio", 1.5, 1).
		Validate()

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

// TestConfigValidator_CollectsAllErrors verifies every failure is reported,
// not just the first
func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	err := NewConfigValidator("Test").
		Required("Name", "").
		PositiveInt("Count", 0).
		FloatAbove("Ratio", 1, 1).
		Validate()

	if err == nil {
		t.Fatal("Expected combined error")
	}
	msg := err.Error()
	for _, field := range []string{"Test.Name", "Test.Count", "Test.Ratio"} {
		if !strings.Contains(msg, field) {
			t.Errorf("Expected error to mention %s, got %q", field, msg)
		}
	}
}

// TestConfigValidator_IntRange verifies range boundaries are inclusive
func TestConfigValidator_IntRange(t *testing.T) {
	if err := NewConfigValidator("Test").IntRange("Port", 1, 1, 65535).Validate(); err != nil {
		t.Errorf("Expected lower bound to pass, got %v", err)
	}
	if err := NewConfigValidator("Test").IntRange("Port", 0, 1, 65535).Validate(); err == nil {
		t.Error("Expected below-range value to fail")
	}
	if err := NewConfigValidator("Test").IntRange("Port", 65536, 1, 65535).Validate(); err == nil {
		t.Error("Expected above-range value to fail")
	}
}
