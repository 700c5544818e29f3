package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "created_at",
		"name":       "name",
	}

	cases := []struct {
		name string
		p    Params
		want string
	}{
		{"default descending", Params{SortBy: "", SortOrder: "desc"}, "created_at DESC"},
		{"whitelisted ascending", Params{SortBy: "name", SortOrder: "asc"}, "name ASC"},
		{"unknown column falls back", Params{SortBy: "password", SortOrder: "asc"}, "created_at ASC"},
		{"injection attempt falls back", Params{SortBy: "name; DROP TABLE users", SortOrder: "desc"}, "created_at DESC"},
	}
	for _, tc := range cases {
		got, err := tc.p.SafeOrderClause(allowed, "created_at")
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	if meta.TotalPages != 5 {
		t.Errorf("total pages = %d, want 5", meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Error("page 2 of 5 should have both neighbors")
	}
	if meta.NextPage == nil || *meta.NextPage != 3 {
		t.Error("next page should be 3")
	}

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty result meta = %+v", empty)
	}
}

func TestParseFiberClamping(t *testing.T) {
	cases := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", 1, 25},
		{"negative page", "page=-5", 1, 25},
		{"per_page over max", "per_page=9999", 1, 200},
		{"zero per_page", "per_page=0", 1, 25},
		{"normal values", "page=3&per_page=50", 3, 50},
	}
	for _, tc := range cases {
		app := fiber.New()
		var got Params
		app.Get("/", func(c *fiber.Ctx) error {
			got = ParseFiber(c, "created_at", "desc", DefaultOpts)
			return nil
		})
		if _, err := app.Test(httptest.NewRequest("GET", "/?"+tc.query, nil)); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got.Page != tc.wantPage || got.PerPage != tc.wantPerPage {
			t.Errorf("%s: got page=%d per_page=%d, want page=%d per_page=%d",
				tc.name, got.Page, got.PerPage, tc.wantPage, tc.wantPerPage)
		}
	}
}
