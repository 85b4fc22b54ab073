package progression

import (
	"reflect"
	"testing"
)

func TestParse_DelimitedPath(t *testing.T) {
	got := Parse("Junior Developer → Senior Developer → Lead Developer")
	want := []string{"Junior Developer", "Senior Developer", "Lead Developer"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParse_SingleRoleNoDelimiter(t *testing.T) {
	got := Parse("Engineering Manager")
	if !reflect.DeepEqual(got, []string{"Engineering Manager"}) {
		t.Fatalf("expected single-step path, got %v", got)
	}
}

func TestParse_Empty(t *testing.T) {
	if got := Parse(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := Parse("   "); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}

func TestParse_DropsEmptySegments(t *testing.T) {
	got := Parse("A → → B →")
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
