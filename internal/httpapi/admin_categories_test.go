package httpapi

import "testing"

func TestResolveCategoryListMode(t *testing.T) {
	cases := []struct {
		withStats, withCounts, hierarchical bool
		want                                categoryListMode
	}{
		{false, false, false, categoriesFlat},
		{false, false, true, categoriesTree},
		{false, true, false, categoriesCounts},
		{false, true, true, categoriesCounts},
		{true, false, false, categoriesStats},
		{true, true, true, categoriesStats},
	}
	for _, tc := range cases {
		got := resolveCategoryListMode(tc.withStats, tc.withCounts, tc.hierarchical)
		if got != tc.want {
			t.Fatalf("resolveCategoryListMode(%v, %v, %v) = %d, want %d",
				tc.withStats, tc.withCounts, tc.hierarchical, got, tc.want)
		}
	}
}

func TestHasRole(t *testing.T) {
	if !hasRole([]string{"student", "ADMIN"}, "ADMIN") {
		t.Fatal("role match is case-insensitive")
	}
	if hasRole([]string{"STUDENT"}, "ADMIN") {
		t.Fatal("unexpected role match")
	}
	if hasRole(nil, "ADMIN") {
		t.Fatal("empty role set matched")
	}
}
