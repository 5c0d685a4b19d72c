package httpapi

import (
	"encoding/json"
	"net/http"

	"learnhub-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

type categoryListMode int

const (
	categoriesFlat categoryListMode = iota
	categoriesTree
	categoriesCounts
	categoriesStats
)

// resolveCategoryListMode picks exactly one response shape. Stats wins over
// counts, counts over the listing shapes.
func resolveCategoryListMode(withStats, withCounts, hierarchical bool) categoryListMode {
	switch {
	case withStats:
		return categoriesStats
	case withCounts:
		return categoriesCounts
	case hierarchical:
		return categoriesTree
	default:
		return categoriesFlat
	}
}

func (s *Server) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	mode := resolveCategoryListMode(
		queryFlag(r, "withStats"),
		queryFlag(r, "withCounts"),
		queryFlag(r, "hierarchical"),
	)
	switch mode {
	case categoriesStats:
		stats, err := services.FetchCategoryStats(s.DB)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
	case categoriesCounts:
		counts, err := services.CategoryCounts(s.DB)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"counts": counts})
	default:
		items, err := services.ListCategories(s.DB, queryFlag(r, "includeInactive"))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if mode == categoriesTree {
			WriteJSON(w, http.StatusOK, map[string]interface{}{"categories": services.BuildCategoryTree(items)})
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"categories": items})
	}
}

type CategoryCreateRequest struct {
	Name      string  `json:"name"`
	ParentID  *string `json:"parentId"`
	SortOrder *int    `json:"sortOrder"`
}

func (s *Server) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	name, err := services.NormalizeRequired(req.Name, "Category name is required")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}
	item, err := services.CreateCategory(s.DB, name, req.ParentID, sortOrder)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusCreated, item)
}

type CategoryUpdateRequest struct {
	Name      *string `json:"name"`
	ParentID  *string `json:"parentId"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"sortOrder"`
}

func (s *Server) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	var req CategoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	item, err := services.UpdateCategory(s.DB, categoryID, req.Name, req.ParentID, req.IsActive, req.SortOrder)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if err := services.DeleteCategory(s.DB, categoryID); err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
