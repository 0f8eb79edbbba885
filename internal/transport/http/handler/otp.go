package handler

import (
	"errors"
	"net/http"

	"github.com/logistics-net-api/internal/application/otp"
	"github.com/logistics-net-api/internal/domain"
)

// OTPHandler handles email verification endpoints.
type OTPHandler struct {
	svc otp.Service
}

func NewOTPHandler(svc otp.Service) *OTPHandler { return &OTPHandler{svc: svc} }

func (h *OTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.SendOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.IssueCode(r.Context(), req.Email); err != nil {
		msg := "Failed to send OTP."
		if errors.Is(err, domain.ErrBadRequest) {
			msg = "Email is required."
		}
		httpError(w, r, err, msg)
		return
	}
	writeMessage(w, http.StatusOK, "OTP sent successfully.")
}

func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.VerifyCode(r.Context(), req.Email, req.OTP); err != nil {
		msg := "Failed to verify OTP."
		switch {
		case errors.Is(err, domain.ErrBadRequest):
			msg = "Email and OTP are required."
		case errors.Is(err, domain.ErrUnauthorized):
			msg = "Invalid or expired OTP."
		}
		httpError(w, r, err, msg)
		return
	}
	writeMessage(w, http.StatusOK, "Email verified successfully.")
}
