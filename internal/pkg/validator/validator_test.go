package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", "2023-02-29", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidStoreID(t *testing.T) {
	valid := []string{"301234", "store-12", "PC_9.a"}
	invalid := []string{"", "has space", "semi;colon", "a/b"}
	for _, s := range valid {
		if !IsValidStoreID(s) {
			t.Errorf("IsValidStoreID(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidStoreID(s) {
			t.Errorf("IsValidStoreID(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "invalid date"},
		{Field: "store_id", Message: "required"},
	}
	if got := errs.Error(); got != "start_date: invalid date; store_id: required" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if m["store_id"] != "required" || len(m) != 2 {
		t.Errorf("ToMap() = %v", m)
	}
}
