package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func getGames(t *testing.T, query string) (int, listingList) {
	t.Helper()
	router := testRouter(t, testDeps(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games"+query, nil))
	var body listingList
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return rec.Code, body
}

func TestListGames(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ids   []int
	}{
		{name: "no filters", query: "", ids: []int{1, 2, 3, 4, 5, 6, 7}},
		{name: "platform", query: "?platform=Switch", ids: []int{2, 6}},
		{name: "platform case insensitive", query: "?platform=switch", ids: []int{2, 6}},
		{name: "repeated platform", query: "?platform=PC&platform=PS5", ids: []int{3, 5}},
		{name: "comma separated category", query: "?category=RPG,Racing", ids: []int{1, 3, 4}},
		{name: "platform and category", query: "?platform=Multi&category=RPG", ids: []int{1}},
		{name: "price range uses effective price", query: "?min_price=20&max_price=40", ids: []int{1, 2, 3}},
		{name: "inclusive bounds", query: "?min_price=62.99&max_price=62.99", ids: []int{5}},
		{name: "nothing matches", query: "?platform=Dreamcast", ids: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := getGames(t, tt.query)
			if code != http.StatusOK {
				t.Fatalf("expected 200, got %d", code)
			}
			if body.Total != 7 {
				t.Fatalf("expected total 7, got %d", body.Total)
			}
			if body.Results == nil {
				t.Fatalf("expected non-nil results")
			}
			if body.Count != len(tt.ids) || len(body.Results) != len(tt.ids) {
				t.Fatalf("expected %d results, got %d", len(tt.ids), body.Count)
			}
			for i, id := range tt.ids {
				if body.Results[i].ID != id {
					t.Fatalf("result %d: expected id %d, got %d", i, id, body.Results[i].ID)
				}
			}
		})
	}
}

func TestListGames_InvalidPrice(t *testing.T) {
	for _, query := range []string{"?min_price=abc", "?max_price=-1", "?min_price=50&max_price=10"} {
		code, _ := getGames(t, query)
		if code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", query, code)
		}
	}
}

func TestGetGame(t *testing.T) {
	router := testRouter(t, testDeps(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/5", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got listingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Title != "Star Drift" || !got.Discounted || got.EffectivePrice.StringFixed(2) != "62.99" {
		t.Fatalf("unexpected listing %+v", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/99", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFacets(t *testing.T) {
	router := testRouter(t, testDeps(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got struct {
		Platforms  []string `json:"platforms"`
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Platforms) != 5 || got.Platforms[0] != "Multi" {
		t.Fatalf("unexpected platforms %v", got.Platforms)
	}
	if len(got.Categories) != 5 || got.Categories[0] != "RPG" {
		t.Fatalf("unexpected categories %v", got.Categories)
	}
}
