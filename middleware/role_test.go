package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petconnect/petconnect/models"
)

func roleApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("role", role)
			}
			return c.Next()
		},
		RequireRole(allowed...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"exact match", models.RoleVeterinarian, []string{models.RoleVeterinarian}, http.StatusOK},
		{"any of several", models.RoleAdmin, []string{models.RoleVeterinarian, models.RoleAdmin}, http.StatusOK},
		{"wrong role", models.RoleUser, []string{models.RoleVeterinarian, models.RoleAdmin}, http.StatusForbidden},
		{"no role set", "", []string{models.RoleAdmin}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := roleApp(tc.role, tc.allowed...)
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(BearerToken(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", string(raw))
}
