package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerPathsMatchRoutes(t *testing.T) {
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "/", doc.BasePath)
	for _, p := range []string{
		"/.well-known/keys",
		"/api/v1/healthz",
		"/api/v1/readyz",
		"/api/v1/classes",
		"/api/v1/save-links",
		"/api/v1/save-links/existing",
	} {
		assert.Contains(t, doc.Paths, p)
	}
}
