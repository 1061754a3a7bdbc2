package repositories

import (
	"reflect"
	"testing"
)

func TestBuildPartialUpdateRecognizedFieldsOnly(t *testing.T) {
	payload := map[string]interface{}{
		"year":          "Senior",
		"housingStatus": "off-campus",
		"favoriteColor": "green",
	}

	sql, args, fields, err := BuildPartialUpdate(statementBuilder(), StudentPatchSpec, payload, int64(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields != 2 {
		t.Fatalf("expected 2 recognized fields, got %d", fields)
	}

	want := "UPDATE students SET year = $1, housing_status = $2 WHERE user_id = $3"
	if sql != want {
		t.Errorf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	wantArgs := []interface{}{"Senior", "off-campus", int64(42)}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("unexpected args: got %v, want %v", args, wantArgs)
	}
}

func TestBuildPartialUpdateAppliesAllowListOrder(t *testing.T) {
	payload := map[string]interface{}{
		"advisor": int64(7),
		"year":    "Junior",
		"college": "Engineering",
	}

	sql, _, fields, err := BuildPartialUpdate(statementBuilder(), StudentPatchSpec, payload, int64(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields != 3 {
		t.Fatalf("expected 3 recognized fields, got %d", fields)
	}

	// Columns follow the allow-list order regardless of payload key order.
	want := "UPDATE students SET year = $1, college = $2, advisor = $3 WHERE user_id = $4"
	if sql != want {
		t.Errorf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
}

func TestBuildPartialUpdateNoRecognizedFields(t *testing.T) {
	payload := map[string]interface{}{
		"nickname": "Sam",
		"gpa":      3.9,
	}

	sql, args, fields, err := BuildPartialUpdate(statementBuilder(), StudentPatchSpec, payload, int64(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields != 0 {
		t.Fatalf("expected 0 recognized fields, got %d", fields)
	}
	if sql != "" || args != nil {
		t.Errorf("expected empty statement for no-op, got sql=%q args=%v", sql, args)
	}
}

func TestBuildPartialUpdateEmptyPayload(t *testing.T) {
	_, _, fields, err := BuildPartialUpdate(statementBuilder(), MaintenancePatchSpec, map[string]interface{}{}, int64(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields != 0 {
		t.Fatalf("expected 0 recognized fields, got %d", fields)
	}
}

func TestBuildPartialUpdateNullValue(t *testing.T) {
	// An explicit null clears the column rather than being dropped.
	payload := map[string]interface{}{
		"returnDate": nil,
	}

	sql, args, fields, err := BuildPartialUpdate(statementBuilder(), RentalPatchSpec, payload, int64(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields != 1 {
		t.Fatalf("expected 1 recognized field, got %d", fields)
	}

	want := "UPDATE rentals SET return_date = $1 WHERE rental_id = $2"
	if sql != want {
		t.Errorf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	if len(args) != 2 || args[0] != nil {
		t.Errorf("expected nil first arg, got %v", args)
	}
}
