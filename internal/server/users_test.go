package server

import (
	"net/http"
	"testing"

	userdomain "github.com/spellworks/grimoire/internal/user/domain"
)

func TestCreateUserReturnsAPIKey(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/user-auth/create",
		`{"name":"Rowan","email":"rowan@example.com","plan":"FREE"}`, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body %s", resp.Code, resp.Body.String())
	}

	body := decodeBody(t, resp)
	if body["message"] != "User created successfully" {
		t.Fatalf("unexpected message %q", body["message"])
	}
	data := body["data"].(map[string]any)
	key, _ := data["apiKey"].(string)
	if len(key) != 64 {
		t.Fatalf("expected 64-char hex api key, got %q", key)
	}
	if data["plan"] != "FREE" || data["email"] != "rowan@example.com" {
		t.Fatalf("unexpected data %v", data)
	}
}

func TestCreateUserInvalidPlan(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/user-auth/create",
		`{"name":"Rowan","email":"rowan@example.com","plan":"GOLD"}`, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	body := decodeBody(t, resp)
	if body["message"] != "Invalid plan value" {
		t.Fatalf("unexpected message %q", body["message"])
	}
	allowed, _ := body["allowed"].([]any)
	if len(allowed) != 3 {
		t.Fatalf("expected 3 allowed plans, got %v", allowed)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	payload := `{"name":"Rowan","email":"dup@example.com","plan":"PRO"}`
	first := env.do(t, http.MethodPost, "/api/v1/user-auth/create", payload, nil)
	if first.Code != http.StatusCreated {
		t.Fatalf("first create: got %d", first.Code)
	}

	second := env.do(t, http.MethodPost, "/api/v1/user-auth/create", payload, nil)
	if second.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create: expected 400, got %d", second.Code)
	}
	body := decodeBody(t, second)
	if body["success"] != false {
		t.Fatal("expected success=false")
	}
	if body["message"] != "User with this email already exists" {
		t.Fatalf("unexpected message %q", body["message"])
	}

	var count int64
	if err := env.db.Model(&userdomain.User{}).Where("email = ?", "dup@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestGetUsersRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "FREE", "key-list")

	denied := env.do(t, http.MethodGet, "/api/v1/admin/get-users", "", nil)
	if denied.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without bearer token, got %d", denied.Code)
	}

	allowed := env.do(t, http.MethodGet, "/api/v1/admin/get-users", "", env.adminHeaders(t))
	if allowed.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", allowed.Code)
	}
	rows, _ := decodeBody(t, allowed)["data"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected 1 user, got %d", len(rows))
	}
}

func TestGetUserDetailWithUsage(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "FREE", "key-detail")
	env.seedUsageToday(t, u, 3)

	resp := env.do(t, http.MethodGet, "/api/v1/admin/get-user/"+u.ID.String(), "", env.adminHeaders(t))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body %s", resp.Code, resp.Body.String())
	}

	data := decodeBody(t, resp)["data"].(map[string]any)
	if data["usageCount"] != float64(3) {
		t.Fatalf("expected usageCount 3, got %v", data["usageCount"])
	}
	usage, _ := data["usage"].([]any)
	if len(usage) != 3 {
		t.Fatalf("expected 3 usage rows, got %d", len(usage))
	}
}

func TestGetUserDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/admin/get-user/123456789", "", env.adminHeaders(t))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if decodeBody(t, resp)["message"] != "User not found" {
		t.Fatalf("unexpected message")
	}
}
