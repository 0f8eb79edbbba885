package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/logistics-net-api/internal/application/account"
	"github.com/logistics-net-api/internal/domain"
	"github.com/logistics-net-api/internal/pkg/validate"
)

// AccountHandler handles registration and login for every account variant.
type AccountHandler struct {
	svc account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler { return &AccountHandler{svc: svc} }

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	variant, ok := variantParam(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req, err := decodeRegister(variant, body)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRegister(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Register(r.Context(), variant, req); err != nil {
		msg := "Server error during registration."
		switch {
		case errors.Is(err, domain.ErrConflict):
			msg = "Account with this email already exists."
		case errors.Is(err, domain.ErrBadRequest):
			msg = "Invalid registration details."
		}
		httpError(w, r, err, msg)
		return
	}
	writeMessage(w, http.StatusCreated, "User registered successfully!")
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	variant, ok := variantParam(w, r)
	if !ok {
		return
	}
	var creds domain.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	if err := validate.Struct(&creds); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Login(r.Context(), variant, creds); err != nil {
		msg := "Server error during login."
		switch {
		case errors.Is(err, domain.ErrNotFound):
			msg = "User not found."
		case errors.Is(err, domain.ErrUnauthorized):
			msg = "Invalid credentials."
		}
		httpError(w, r, err, msg)
		return
	}
	writeMessage(w, http.StatusOK, "Login successful!")
}

func variantParam(w http.ResponseWriter, r *http.Request) (domain.Variant, bool) {
	v, err := domain.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Unknown account type.")
		return "", false
	}
	return v, true
}

// decodeRegister reads the flat request body into the credentials and the
// profile of the requested variant.
func decodeRegister(variant domain.Variant, body []byte) (domain.RegisterRequest, error) {
	var req domain.RegisterRequest
	if err := json.Unmarshal(body, &req.Credentials); err != nil {
		return req, err
	}
	var profile interface{}
	switch variant {
	case domain.VariantStartup:
		req.Startup = &domain.StartupProfile{}
		profile = req.Startup
	case domain.VariantBusiness:
		req.Business = &domain.BusinessProfile{}
		profile = req.Business
	case domain.VariantCustomer:
		req.Customer = &domain.CustomerProfile{}
		profile = req.Customer
	}
	return req, json.Unmarshal(body, profile)
}

func validateRegister(req domain.RegisterRequest) error {
	if err := validate.Struct(&req.Credentials); err != nil {
		return err
	}
	switch {
	case req.Startup != nil:
		return validate.Struct(req.Startup)
	case req.Business != nil:
		return validate.Struct(req.Business)
	case req.Customer != nil:
		return validate.Struct(req.Customer)
	}
	return nil
}
