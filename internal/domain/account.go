package domain

import (
	"fmt"
	"strings"
	"time"
)

// Variant is one of the closed set of account classes.
type Variant string

const (
	VariantStartup  Variant = "startup"
	VariantBusiness Variant = "business"
	VariantCustomer Variant = "customer"
)

// Variants lists every account class in a stable order.
var Variants = []Variant{VariantStartup, VariantBusiness, VariantCustomer}

// ParseVariant resolves a path segment to a Variant. "intracity" is an alias for customer.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "startup":
		return VariantStartup, nil
	case "business":
		return VariantBusiness, nil
	case "customer", "intracity":
		return VariantCustomer, nil
	}
	return "", fmt.Errorf("unknown account type %q: %w", s, ErrNotFound)
}

// Account is a registered user of one variant. PK: email (one table per variant).
// Exactly one of the profile pointers is set, matching Variant.
type Account struct {
	AccountID    string           `json:"account_id" dynamodbav:"account_id"`
	Email        string           `json:"email" dynamodbav:"email"`
	PasswordHash string           `json:"-" dynamodbav:"password_hash"`
	Variant      Variant          `json:"variant" dynamodbav:"variant"`
	Startup      *StartupProfile  `json:"startup,omitempty" dynamodbav:"startup,omitempty"`
	Business     *BusinessProfile `json:"business,omitempty" dynamodbav:"business,omitempty"`
	Customer     *CustomerProfile `json:"customer,omitempty" dynamodbav:"customer,omitempty"`
	CreatedAt    time.Time        `json:"created_at" dynamodbav:"created_at"`
}

type StartupProfile struct {
	CompanyName      string `json:"companyName" dynamodbav:"company_name" validate:"required"`
	YearsInOperation *int   `json:"yearsInOperation" dynamodbav:"years_in_operation" validate:"required,min=0"`
	FleetSize        string `json:"fleetSize" dynamodbav:"fleet_size" validate:"required"`
	ServiceArea      string `json:"serviceArea" dynamodbav:"service_area" validate:"required"`
}

type BusinessProfile struct {
	CompanyName      string `json:"companyName" dynamodbav:"company_name" validate:"required"`
	BusinessType     string `json:"businessType" dynamodbav:"business_type" validate:"required"`
	CompanySize      string `json:"companySize" dynamodbav:"company_size" validate:"required"`
	MonthlyShipments *int   `json:"monthlyShipments" dynamodbav:"monthly_shipments" validate:"required,min=0"`
}

type CustomerProfile struct {
	FullName string `json:"fullName" dynamodbav:"full_name" validate:"required"`
}

// Credentials are the fields common to every register and login request.
// bcrypt ignores input past 72 bytes, so longer passwords are rejected.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// RegisterRequest carries the credentials plus the profile of the requested variant.
type RegisterRequest struct {
	Credentials
	Startup  *StartupProfile
	Business *BusinessProfile
	Customer *CustomerProfile
}
