package controllers

import (
	"encoding/json"
	"net/http"

	"pngbilling-backend/utils"
	"pngbilling-backend/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindAndValidate decodes the request body into a raw JSON object and runs
// the entity schema over it. Validation failures respond 400 with the
// field-keyed error map and never reach the database.
func bindAndValidate(c *gin.Context, schema validation.Schema) (map[string]interface{}, bool) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return nil, false
	}

	if errs := schema.Apply(payload); errs != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": errs,
		})
		return nil, false
	}

	return payload, true
}

// decodePayload moves a validated JSON object into the entity struct.
func decodePayload(payload map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// parseIDParam reads and parses the :id path parameter.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}

// expandRequested reports whether the caller asked for a relation to be
// included inline, e.g. GET /api/bills/:id?customer=true.
func expandRequested(c *gin.Context, relation string) bool {
	return c.Query(relation) == "true"
}
