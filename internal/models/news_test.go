package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewsCreateValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := NewsCreate{TitleEN: "Launch", TitleAR: "إطلاق"}
		assert.NoError(t, payload.Validate())
	})

	t.Run("missing title_en", func(t *testing.T) {
		payload := NewsCreate{TitleAR: "إطلاق"}
		err := payload.Validate()
		assert.Error(t, err)

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Problems, "title_en is required")
	})

	t.Run("missing both titles", func(t *testing.T) {
		payload := NewsCreate{BodyEN: "body only"}
		err := payload.Validate()

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Problems, 2)
	})
}

func TestNewsCreateItem(t *testing.T) {
	payload := NewsCreate{
		TitleEN:  "Launch",
		TitleAR:  "إطلاق",
		BodyEN:   "body",
		Tag:      "Product",
		ImageURL: "https://example.com/a.jpg",
	}

	item := payload.Item()
	assert.Equal(t, "Launch", item.TitleEN)
	assert.Equal(t, "إطلاق", item.TitleAR)
	assert.Equal(t, "Product", item.Tag)
	assert.False(t, item.Featured, "featured defaults to false")
	assert.True(t, item.ID.IsZero(), "id is assigned by the store layer")
}

func TestNewsItemJSONSerialization(t *testing.T) {
	oid := primitive.NewObjectID()
	item := NewsItem{ID: oid, TitleEN: "Launch", TitleAR: "إطلاق"}

	data, err := json.Marshal(item)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, oid.Hex(), decoded["id"], "identifier is exposed as a hex string")
	assert.NotContains(t, decoded, "_id")
	assert.NotContains(t, decoded, "body_en", "empty optional fields are omitted")
}

func TestNewsCreateIgnoresUnknownFields(t *testing.T) {
	raw := `{"title_en":"Launch","title_ar":"إطلاق","rating":5,"author":"x"}`

	var payload NewsCreate
	assert.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.NoError(t, payload.Validate())
	assert.Equal(t, "Launch", payload.TitleEN)
}
