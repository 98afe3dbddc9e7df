package service

import (
	"strings"
	"testing"

	"github.com/userhub/account-api/internal/core/ports"
)

func TestValidateStruct_FieldKeysUseJSONNames(t *testing.T) {
	verr := validateStruct(ports.RegisterInput{})
	if verr.Empty() {
		t.Fatalf("expected failures for empty input")
	}
	for field := range verr.Fields {
		if field != strings.ToLower(field) {
			t.Fatalf("expected json field name, got %q", field)
		}
	}
	if _, ok := verr.Fields["Name"]; ok {
		t.Fatalf("Go field names must not leak into the error bag")
	}
}

func TestValidateStruct_DistinctMessagesPerRule(t *testing.T) {
	missing := validateStruct(ports.LoginInput{Password: "x"})
	malformed := validateStruct(ports.LoginInput{Email: "nope", Password: "x"})
	long := validateStruct(ports.LoginInput{
		Email:    strings.Repeat("a", 250) + "@example.com",
		Password: "x",
	})

	msgs := map[string]string{
		"required": missing.Fields["email"][0],
		"email":    malformed.Fields["email"][0],
		"max":      long.Fields["email"][0],
	}
	seen := make(map[string]bool)
	for rule, msg := range msgs {
		if msg == "" {
			t.Fatalf("no message for rule %s", rule)
		}
		if seen[msg] {
			t.Fatalf("rules must produce distinct messages, %q repeated", msg)
		}
		seen[msg] = true
	}
}

func TestValidateStruct_ValidInputIsEmpty(t *testing.T) {
	verr := validateStruct(ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "longenough",
	})
	if !verr.Empty() {
		t.Fatalf("expected no failures, got %v", verr.Fields)
	}
}
