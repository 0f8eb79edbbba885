package http

import (
	"github.com/logistics-net-api/internal/application/account"
	"github.com/logistics-net-api/internal/application/catalog"
	"github.com/logistics-net-api/internal/application/otp"
	"github.com/logistics-net-api/internal/domain"
	"github.com/logistics-net-api/internal/infrastructure/mail"
	"github.com/logistics-net-api/internal/infrastructure/predictor"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	OTPLedger     otp.Ledger
	AccountStores map[domain.Variant]account.Store
	Mailer        mail.Mailer
	Predictor     predictor.Predictor
	Catalog       catalog.Service
}
