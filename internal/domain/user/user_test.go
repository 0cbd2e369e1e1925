package user

import "testing"

func TestUpdateColumnsOnlySupplied(t *testing.T) {
	email := " new@example.com "
	u := Update{Email: &email}
	if u.IsEmpty() {
		t.Fatal("update with email should not be empty")
	}
	cols := u.Columns()
	if len(cols) != 1 || cols["email"] != "new@example.com" {
		t.Fatalf("unexpected columns: %v", cols)
	}
	if !(Update{}).IsEmpty() {
		t.Fatal("zero update should be empty")
	}
}
