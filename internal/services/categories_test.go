package services

import "testing"

func strPtr(s string) *string { return &s }

func TestBuildCategoryTreeNesting(t *testing.T) {
	items := []CategoryItem{
		{ID: "root", Name: "Root"},
		{ID: "child", Name: "Child", ParentID: strPtr("root")},
		{ID: "grandchild", Name: "Grandchild", ParentID: strPtr("child")},
		{ID: "other", Name: "Other"},
	}
	roots := BuildCategoryTree(items)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	var root *CategoryNode
	for _, node := range roots {
		if node.ID == "root" {
			root = node
		}
	}
	if root == nil {
		t.Fatal("root node missing")
	}
	if len(root.Children) != 1 || root.Children[0].ID != "child" {
		t.Fatalf("unexpected children of root: %+v", root.Children)
	}
	if len(root.Children[0].Children) != 1 || root.Children[0].Children[0].ID != "grandchild" {
		t.Fatalf("grandchild not nested under child")
	}
}

func TestBuildCategoryTreeMissingParentBecomesRoot(t *testing.T) {
	items := []CategoryItem{
		{ID: "a", Name: "A", ParentID: strPtr("gone")},
	}
	roots := BuildCategoryTree(items)
	if len(roots) != 1 || roots[0].ID != "a" {
		t.Fatalf("orphan should surface at root, got %+v", roots)
	}
}

func TestBuildCategoryTreeSelfParentBecomesRoot(t *testing.T) {
	items := []CategoryItem{
		{ID: "a", Name: "A", ParentID: strPtr("a")},
	}
	roots := BuildCategoryTree(items)
	if len(roots) != 1 || roots[0].ID != "a" {
		t.Fatalf("self-parented node should surface at root, got %+v", roots)
	}
}

func TestBuildCategoryTreeCycleDoesNotLoop(t *testing.T) {
	items := []CategoryItem{
		{ID: "a", Name: "A", ParentID: strPtr("b")},
		{ID: "b", Name: "B", ParentID: strPtr("a")},
	}
	roots := BuildCategoryTree(items)
	seen := map[string]bool{}
	for _, node := range roots {
		seen[node.ID] = true
	}
	if !seen["a"] && !seen["b"] {
		t.Fatalf("cycle members never surfaced: %+v", roots)
	}
}
