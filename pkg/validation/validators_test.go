package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type personPayload struct {
	Name  string `validate:"omitempty,valid_name,no_emoji"`
	Phone string `validate:"omitempty,valid_phone"`
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	t.Run("accepts realistic values", func(t *testing.T) {
		assert.NoError(t, v.Struct(personPayload{Name: "Jane O'Brien-Doe", Phone: "(555) 123-4567"}))
		assert.NoError(t, v.Struct(personPayload{Phone: "+14155550198"}))
		assert.NoError(t, v.Struct(personPayload{}))
	})

	t.Run("rejects symbols in names", func(t *testing.T) {
		assert.Error(t, v.Struct(personPayload{Name: "Jane <script>"}))
	})

	t.Run("rejects emoji", func(t *testing.T) {
		assert.Error(t, v.Struct(personPayload{Name: "Jane \U0001F600"}))
	})

	t.Run("rejects letters in phone", func(t *testing.T) {
		assert.Error(t, v.Struct(personPayload{Phone: "call-me-maybe"}))
	})
}
