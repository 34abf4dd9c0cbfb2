package auth

import (
	"testing"
	"time"
)

func newTestJWTer() *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("u-1", "user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UID != "u-1" || claims.Role != "user" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, _ := newTestJWTer().Issue("u-1", "user")
	other := &JWTer{Secret: []byte("other"), Issuer: "test", TTL: time.Hour}
	if _, err := other.Parse(tok); err == nil {
		t.Fatal("token signed with another secret must not parse")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("s"), Issuer: "someone-else", TTL: time.Hour}
	tok, _ := j.Issue("u-1", "user")
	me := &JWTer{Secret: []byte("s"), Issuer: "me", TTL: time.Hour}
	if _, err := me.Parse(tok); err == nil {
		t.Fatal("wrong issuer must not parse")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	j := &JWTer{Secret: []byte("s"), Issuer: "test", TTL: -2 * time.Minute}
	tok, _ := j.Issue("u-1", "user")
	if _, err := j.Parse(tok); err == nil {
		t.Fatal("expired token must not parse")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := newTestJWTer().Parse("not-a-jwt"); err == nil {
		t.Fatal("garbage must not parse")
	}
}
