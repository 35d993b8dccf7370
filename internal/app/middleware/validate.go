package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"wallpost/pkg/schema"

	"github.com/gin-gonic/gin"
)

// payloadKey is the gin context key holding the validated request payload.
const payloadKey = "payload"

// ValidateJSON parses the request body as a JSON object and validates it
// against the given schema. A body that is not valid JSON is rejected with a
// bare 400; a schema failure is rejected with {"error": "<message>"}. On
// success the decoded object is stored in the context for the handler.
func ValidateJSON(s schema.Object) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		var data map[string]interface{}
		err = json.Unmarshal(body, &data)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		err = s.Validate(data)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Set(payloadKey, data)
		c.Next()
	}
}

// GetPayload returns the validated payload set by ValidateJSON.
func GetPayload(c *gin.Context) map[string]interface{} {
	value, exists := c.Get(payloadKey)
	if !exists {
		return nil
	}

	data, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}
	return data
}

// PayloadString extracts a string field from the validated payload. Schema
// validation has already guaranteed the type for declared properties.
func PayloadString(c *gin.Context, field string) string {
	data := GetPayload(c)
	if data == nil {
		return ""
	}

	s, _ := data[field].(string)
	return s
}
