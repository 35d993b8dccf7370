package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Object
		data    map[string]interface{}
		wantErr string
	}{
		{
			name:   "valid login payload",
			schema: Login,
			data:   map[string]interface{}{"username": "abc", "password": "def"},
		},
		{
			name:    "empty payload reports username first",
			schema:  Login,
			data:    map[string]interface{}{},
			wantErr: "'username' is a required property",
		},
		{
			name:    "missing password",
			schema:  Login,
			data:    map[string]interface{}{"username": "abc"},
			wantErr: "'password' is a required property",
		},
		{
			name:    "wrong type",
			schema:  RefreshToken,
			data:    map[string]interface{}{"token": 42.0},
			wantErr: "'token' is not of type 'string'",
		},
		{
			name:   "extra fields are allowed",
			schema: StickerCreate,
			data:   map[string]interface{}{"title": "Hi", "description": "Desc", "color": "red"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate(tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
