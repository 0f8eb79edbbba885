package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/logistics-net-api/internal/application/catalog"
)

// CompanyHandler serves the static carrier catalog.
type CompanyHandler struct {
	svc catalog.Service
}

func NewCompanyHandler(svc catalog.Service) *CompanyHandler { return &CompanyHandler{svc: svc} }

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	c, err := h.svc.Get(name)
	if err != nil {
		httpError(w, r, err, "Company details not found.")
		return
	}
	writeJSON(w, http.StatusOK, c)
}
