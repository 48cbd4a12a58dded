package jwtutil

import (
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	s := &Signer{Secret: []byte("unit-secret"), Issuer: "taskboard", ExpHours: 168}

	token, err := s.Sign(42, "manager")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := s.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "manager" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected a jti")
	}
	if claims.Issuer != "taskboard" {
		t.Errorf("issuer = %q", claims.Issuer)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 168*time.Hour {
		t.Errorf("ttl = %v, want 168h", ttl)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	a := &Signer{Secret: []byte("secret-a"), Issuer: "taskboard", ExpHours: 1}
	b := &Signer{Secret: []byte("secret-b"), Issuer: "taskboard", ExpHours: 1}

	token, err := a.Sign(1, "admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := b.Parse(token); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	s := &Signer{Secret: []byte("unit-secret"), Issuer: "taskboard", ExpHours: -1}
	token, err := s.Sign(1, "employee")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := s.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	s := &Signer{Secret: []byte("unit-secret"), Issuer: "taskboard", ExpHours: 1}
	if _, err := s.Parse("not.a.token"); err == nil {
		t.Fatal("expected parse failure")
	}
}
