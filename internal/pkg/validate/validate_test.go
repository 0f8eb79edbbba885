package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email      string   `json:"email" validate:"required,email"`
	Priorities []string `json:"priorities" validate:"required,min=1,dive,oneof=cost speed"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(sample{Email: "a@x.com", Priorities: []string{"cost"}}))
}

func TestStruct_UsesJSONFieldNames(t *testing.T) {
	err := Struct(sample{Priorities: []string{"cost"}})
	assert.EqualError(t, err, "field 'email' failed 'required'")
}

func TestStruct_DiveReportsEachBadElement(t *testing.T) {
	err := Struct(sample{Email: "a@x.com", Priorities: []string{"cost", "luck"}})
	assert.ErrorContains(t, err, "failed 'oneof'")
}
