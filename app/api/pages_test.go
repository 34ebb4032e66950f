package api

import (
	"encoding/json"
	"net/http"
	"testing"
)

func decodeJSON(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return out
}

func TestBrandPageView(t *testing.T) {
	body := `{"statusCode":200,"status":"success","data":[{"story_id":1,"url":"https://x/y.jpg","brand_name":"Nike","username":"bob","user_image":"https://x/u.jpg","total_views":12}]}`
	stub := &upstreamStub{status: 200, body: body}
	server, cleanup := setup(t, stub)
	defer cleanup()

	rec := doGET(t, server, "/pages/brand/42")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected HTTP 200, got %d", rec.Code)
	}

	view := decodeJSON(t, rec.Body.Bytes())
	if view["brand_name"] != "Nike" {
		t.Errorf("Expected brand name 'Nike', got %v", view["brand_name"])
	}
	if view["display_brand_name"] != "Nike" {
		t.Errorf("Expected display brand name 'Nike', got %v", view["display_brand_name"])
	}

	// both the stories and the brand posts calls went upstream
	if stub.hits != 2 {
		t.Errorf("Expected 2 upstream calls, got %d", stub.hits)
	}
}

func TestBrandPageViewUpstreamDown(t *testing.T) {
	stub := &upstreamStub{status: 500, body: "Internal Server Error"}
	server, cleanup := setup(t, stub)
	defer cleanup()

	rec := doGET(t, server, "/pages/brand/42")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected HTTP 200, got %d", rec.Code)
	}

	view := decodeJSON(t, rec.Body.Bytes())
	if view["display_brand_name"] != "Brand" {
		t.Errorf("Expected default brand name, got %v", view["display_brand_name"])
	}

	// with no stories the demo host list is shown
	hosts, ok := view["brand_hosts"].([]interface{})
	if !ok || len(hosts) != 6 {
		t.Errorf("Expected 6 fallback hosts, got %v", view["brand_hosts"])
	}
}

func TestProfilePageViewDemoFallback(t *testing.T) {
	// user profile endpoint answers with a non-array data field, which the
	// normalizer coerces to empty, so the profile record is missing and the
	// demo fixture takes over
	stub := &upstreamStub{status: 500, body: "Internal Server Error"}
	server, cleanup := setup(t, stub)
	defer cleanup()

	rec := doGET(t, server, "/pages/profile/999")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected HTTP 200, got %d", rec.Code)
	}

	view := decodeJSON(t, rec.Body.Bytes())
	if view["using_demo_data"] != true {
		t.Errorf("Expected demo data flag, got %v", view["using_demo_data"])
	}

	user, ok := view["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected user object, got %v", view["user"])
	}
	if user["full_name"] != "Gagan Sharma" {
		t.Errorf("Expected demo full name, got %v", user["full_name"])
	}
	if view["title"] != "Gagan Sharma - Ohi Profile" {
		t.Errorf("Unexpected title: %v", view["title"])
	}
}

func TestProfilePageViewTabParameter(t *testing.T) {
	stub := &upstreamStub{status: 500, body: "Internal Server Error"}
	server, cleanup := setup(t, stub)
	defer cleanup()

	rec := doGET(t, server, "/pages/profile/999?tab=all")

	view := decodeJSON(t, rec.Body.Bytes())
	if view["current_tab"] != "all" {
		t.Errorf("Expected tab 'all', got %v", view["current_tab"])
	}

	// demo fixture serves the same 9 placeholders on both tabs
	posts, ok := view["visible_posts"].([]interface{})
	if !ok || len(posts) != 9 {
		t.Errorf("Expected 9 visible posts, got %v", view["visible_posts"])
	}
}
