package model

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"", true},
		{"plain", true},
		{"@x.com", true},
		{"a@", true},
		{"a b@x.com", true},
		{"a@x.com", false},
		{"A@X.com", false},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"x", false},
		{"a-valid-password", false},
		{string(long), true},
		{string(long[:72]), false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(len=%d) error = %v, wantErr %v", len(tt.password), err, tt.wantErr)
		}
	}
}

func TestItemStatusValid(t *testing.T) {
	for _, s := range ItemStatuses {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []ItemStatus{"", "new", "RETIRED", "approved"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestItemHistoryKind(t *testing.T) {
	a, b := int64(1), int64(2)
	reassign := ItemHistory{ItemID: 1, OldOwnerID: &a, NewOwnerID: &b}
	if reassign.Kind() != HistoryKindReassignment {
		t.Errorf("expected reassignment, got %q", reassign.Kind())
	}

	status := ItemHistory{ItemID: 1, Status: ItemStatusApproved}
	if status.Kind() != HistoryKindStatus {
		t.Errorf("expected status, got %q", status.Kind())
	}
}
