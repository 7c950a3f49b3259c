package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwagger(t *testing.T) {
	docPath := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"openapi":"3.0.3"}`), 0o600))

	orig := SwaggerSpecPath
	SwaggerSpecPath = docPath
	t.Cleanup(func() { SwaggerSpecPath = orig })

	router := setupRouter(t, "")

	t.Run("doc.json serves the document", func(t *testing.T) {
		w := get(router, "/swagger/doc.json")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"openapi":"3.0.3"}`, w.Body.String())
	})

	t.Run("ui page", func(t *testing.T) {
		w := get(router, "/swagger/index.html")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "swagger-ui")
	})
}
