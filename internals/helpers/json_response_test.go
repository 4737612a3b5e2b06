package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Runs ResolvePaging inside a real handler so query parsing behaves as
// it does in production routes.
func resolvePagingFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	app := fiber.New()
	var got Paging
	app.Get("/list", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name           string
		target         string
		defaultPerPage int
		maxPerPage     int
		want           Paging
	}{
		{"defaults when absent", "/list", 10, 0, Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
		{"limit alias", "/list?limit=25", 10, 0, Paging{Page: 1, PerPage: 25, Offset: 0, Limit: 25}},
		{"per_page wins over limit", "/list?per_page=5&limit=25", 10, 0, Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}},
		{"capped at max", "/list?limit=500", 0, 200, Paging{Page: 1, PerPage: 200, Offset: 0, Limit: 200}},
		{"zero default passes through", "/list", 0, 200, Paging{Page: 1, PerPage: 0, Offset: 0, Limit: 0}},
		{"garbage falls back", "/list?page=x&limit=-3", 10, 0, Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
		{"offset follows page", "/list?page=3&per_page=20", 10, 0, Paging{Page: 3, PerPage: 20, Offset: 40, Limit: 20}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolvePagingFor(t, tc.target, tc.defaultPerPage, tc.maxPerPage)
			if got != tc.want {
				t.Errorf("ResolvePaging() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
