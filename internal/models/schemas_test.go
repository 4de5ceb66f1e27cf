package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestUserCreateValidate(t *testing.T) {
	valid := UserCreate{Name: "Amina", Email: "amina@example.com", Address: "Cairo"}
	assert.NoError(t, valid.Validate())

	t.Run("age bounds", func(t *testing.T) {
		tooOld := valid
		tooOld.Age = intPtr(121)
		assert.Error(t, tooOld.Validate())

		negative := valid
		negative.Age = intPtr(-1)
		assert.Error(t, negative.Validate())

		edge := valid
		edge.Age = intPtr(120)
		assert.NoError(t, edge.Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		var empty UserCreate
		err := empty.Validate()
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Problems, 3)
	})
}

func TestUserCreateDefaults(t *testing.T) {
	payload := UserCreate{Name: "Amina", Email: "amina@example.com", Address: "Cairo"}
	assert.True(t, payload.Record().IsActive, "is_active defaults to true")

	payload.IsActive = boolPtr(false)
	assert.False(t, payload.Record().IsActive)
}

func TestProductCreateValidate(t *testing.T) {
	valid := ProductCreate{Title: "Sensor", Category: "Hardware", Price: floatPtr(49.9)}
	assert.NoError(t, valid.Validate())

	t.Run("negative price", func(t *testing.T) {
		bad := valid
		bad.Price = floatPtr(-0.01)
		assert.Error(t, bad.Validate())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		free := valid
		free.Price = floatPtr(0)
		assert.NoError(t, free.Validate())
	})

	t.Run("missing price", func(t *testing.T) {
		bad := valid
		bad.Price = nil
		assert.Error(t, bad.Validate())
	})
}

func TestProductCreateDefaults(t *testing.T) {
	payload := ProductCreate{Title: "Sensor", Category: "Hardware", Price: floatPtr(10)}
	assert.True(t, payload.Record().InStock, "in_stock defaults to true")
}
