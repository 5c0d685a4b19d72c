package services

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CategoryItem struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Slug      string  `db:"slug" json:"slug"`
	ParentID  *string `db:"parent_id" json:"parentId"`
	IsActive  bool    `db:"is_active" json:"isActive"`
	SortOrder int     `db:"sort_order" json:"sortOrder"`
}

type CategoryNode struct {
	CategoryItem
	Children []*CategoryNode `json:"children"`
}

type CategoryCount struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Articles int    `db:"articles" json:"articles"`
	News     int    `db:"news" json:"news"`
	Courses  int    `db:"courses" json:"courses"`
}

type CategoryStats struct {
	Total    int `db:"total" json:"total"`
	Active   int `db:"active" json:"active"`
	Inactive int `db:"inactive" json:"inactive"`
	TopLevel int `db:"top_level" json:"topLevel"`
}

func ListCategories(db *sqlx.DB, includeInactive bool) ([]CategoryItem, error) {
	items := []CategoryItem{}
	query := `SELECT id, name, slug, parent_id, is_active, sort_order FROM categories`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order ASC, name ASC`
	err := db.Select(&items, query)
	return items, err
}

// BuildCategoryTree nests categories under their parents. A node whose
// parent is missing or part of a corrupt cycle ends up at the root instead
// of looping.
func BuildCategoryTree(items []CategoryItem) []*CategoryNode {
	nodes := make(map[string]*CategoryNode, len(items))
	for _, item := range items {
		nodes[item.ID] = &CategoryNode{CategoryItem: item, Children: []*CategoryNode{}}
	}
	roots := []*CategoryNode{}
	for _, item := range items {
		node := nodes[item.ID]
		if item.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*item.ParentID]
		if !ok || *item.ParentID == item.ID {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	// a cycle among non-root nodes leaves them unreachable; surface them
	reachable := map[string]bool{}
	var mark func(*CategoryNode)
	mark = func(node *CategoryNode) {
		if reachable[node.ID] {
			return
		}
		reachable[node.ID] = true
		for _, child := range node.Children {
			mark(child)
		}
	}
	for _, root := range roots {
		mark(root)
	}
	for _, item := range items {
		if !reachable[item.ID] {
			node := nodes[item.ID]
			node.Children = []*CategoryNode{}
			roots = append(roots, node)
			reachable[item.ID] = true
		}
	}
	return roots
}

func CategoryCounts(db *sqlx.DB) ([]CategoryCount, error) {
	counts := []CategoryCount{}
	err := db.Select(&counts, `
SELECT c.id, c.name,
       (SELECT count(*) FROM articles a WHERE a.category_id = c.id) AS articles,
       (SELECT count(*) FROM news n WHERE n.category_id = c.id) AS news,
       (SELECT count(*) FROM courses co WHERE co.category_id = c.id) AS courses
FROM categories c
ORDER BY c.sort_order ASC, c.name ASC
`)
	return counts, err
}

func FetchCategoryStats(db *sqlx.DB) (CategoryStats, error) {
	stats := CategoryStats{}
	err := db.Get(&stats, `
SELECT count(*) AS total,
       count(*) FILTER (WHERE is_active) AS active,
       count(*) FILTER (WHERE NOT is_active) AS inactive,
       count(*) FILTER (WHERE parent_id IS NULL) AS top_level
FROM categories
`)
	return stats, err
}

func ResolveCategorySlug(db *sqlx.DB, name string) (string, error) {
	base := Slugify(name)
	candidate := base
	counter := 2
	for {
		var exists bool
		if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1)`, candidate); err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(counter)
		counter++
	}
}

func CreateCategory(db *sqlx.DB, name string, parentID *string, sortOrder int) (CategoryItem, error) {
	slug, err := ResolveCategorySlug(db, name)
	if err != nil {
		return CategoryItem{}, err
	}
	if parentID != nil {
		var exists bool
		if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, *parentID); err != nil {
			return CategoryItem{}, err
		}
		if !exists {
			return CategoryItem{}, ErrBadRequest("Parent category does not exist")
		}
	}
	item := CategoryItem{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		ParentID:  parentID,
		IsActive:  true,
		SortOrder: sortOrder,
	}
	_, err = db.Exec(`
INSERT INTO categories (id, name, slug, parent_id, is_active, sort_order, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$7)
`, item.ID, item.Name, item.Slug, item.ParentID, item.IsActive, item.SortOrder, time.Now().UTC())
	if err != nil {
		return CategoryItem{}, err
	}
	return item, nil
}

func UpdateCategory(db *sqlx.DB, id string, name *string, parentID *string, isActive *bool, sortOrder *int) (CategoryItem, error) {
	item := CategoryItem{}
	if err := db.Get(&item, `SELECT id, name, slug, parent_id, is_active, sort_order FROM categories WHERE id = $1`, id); err != nil {
		return CategoryItem{}, ErrNotFound("Category not found")
	}
	if name != nil {
		item.Name = *name
	}
	if parentID != nil {
		if *parentID == id {
			return CategoryItem{}, ErrBadRequest("Category cannot be its own parent")
		}
		item.ParentID = parentID
	}
	if isActive != nil {
		item.IsActive = *isActive
	}
	if sortOrder != nil {
		item.SortOrder = *sortOrder
	}
	_, err := db.Exec(`
UPDATE categories
SET name = $2, parent_id = $3, is_active = $4, sort_order = $5, updated_at = $6
WHERE id = $1
`, id, item.Name, item.ParentID, item.IsActive, item.SortOrder, time.Now().UTC())
	if err != nil {
		return CategoryItem{}, err
	}
	return item, nil
}

func DeleteCategory(db *sqlx.DB, id string) error {
	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound("Category not found")
	}
	var inUse bool
	if err := db.Get(&inUse, `
SELECT EXISTS(SELECT 1 FROM articles WHERE category_id = $1)
    OR EXISTS(SELECT 1 FROM news WHERE category_id = $1)
    OR EXISTS(SELECT 1 FROM courses WHERE category_id = $1)
`, id); err != nil {
		return err
	}
	if inUse {
		return ErrBadRequest("Category has content and cannot be deleted")
	}
	_, err := db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	return err
}
