package models

import (
	"testing"
	"time"
)

func TestCreateUser_Defaults(t *testing.T) {
	u, err := CreateUser("Budi Santoso", "budi@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != ROLE_USER {
		t.Fatalf("expected role %q, got %q", ROLE_USER, u.Role)
	}
	if u.SubscriptionStatus != SUBSCRIPTION_FREE {
		t.Fatalf("expected subscription %q, got %q", SUBSCRIPTION_FREE, u.SubscriptionStatus)
	}
	if !u.CheckPassword("secret123") {
		t.Fatalf("expected password to verify")
	}
	if u.CheckPassword("wrong") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestCreateUser_Invalid(t *testing.T) {
	if _, err := CreateUser("Bu", "budi@example.com", "secret123"); err == nil {
		t.Fatalf("expected short name to be rejected")
	}
	if _, err := CreateUser("Budi Santoso", "not-an-email", "secret123"); err == nil {
		t.Fatalf("expected invalid email to be rejected")
	}
}

func TestHasActiveSubscription(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		status string
		expiry *time.Time
		want   bool
	}{
		{name: "active with future expiry", status: SUBSCRIPTION_ACTIVE, expiry: &future, want: true},
		{name: "active but expired", status: SUBSCRIPTION_ACTIVE, expiry: &past, want: false},
		{name: "active without expiry", status: SUBSCRIPTION_ACTIVE, expiry: nil, want: false},
		{name: "free with future expiry", status: SUBSCRIPTION_FREE, expiry: &future, want: false},
		{name: "cancelled", status: SUBSCRIPTION_CANCELLED, expiry: &future, want: false},
	}

	for _, tt := range tests {
		u := User{SubscriptionStatus: tt.status, SubscriptionExpiresAt: tt.expiry}
		if got := u.HasActiveSubscription(now); got != tt.want {
			t.Fatalf("%s: HasActiveSubscription = %v, want %v", tt.name, got, tt.want)
		}
	}
}
