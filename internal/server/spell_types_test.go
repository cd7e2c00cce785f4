package server

import (
	"net/http"
	"testing"
)

func TestCreateSpellTypeDuplicate(t *testing.T) {
	env := newTestEnv(t)
	headers := env.adminHeaders(t)

	env.createSpellType(t, headers, "Transfiguration")

	resp := env.do(t, http.MethodPost, "/api/v1/admin/spell-type/create",
		`{"name":"Transfiguration","description":"d"}`, headers)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatal("expected success=true on duplicate create")
	}
	if body["message"] != "Spell Type with this name already exist" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestListSpellTypesHasNoMessage(t *testing.T) {
	env := newTestEnv(t)
	headers := env.adminHeaders(t)

	env.createSpellType(t, headers, "Divination")

	body := decodeBody(t, env.do(t, http.MethodGet, "/api/v1/admin/spell-type", "", headers))
	if _, ok := body["message"]; ok {
		t.Fatal("expected no message field on spell type listing")
	}
	rows, _ := body["data"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected 1 spell type, got %d", len(rows))
	}
}

func TestGetSpellTypeNotFound(t *testing.T) {
	env := newTestEnv(t)
	headers := env.adminHeaders(t)

	resp := env.do(t, http.MethodGet, "/api/v1/admin/spell-type/123456789", "", headers)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["success"] != false {
		t.Fatal("expected success=false")
	}
	// The miss message on this endpoint has always said "Spell".
	if body["message"] != "Spell not found" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestEditSpellTypeNameUnchangedSkipsUniqueCheck(t *testing.T) {
	env := newTestEnv(t)
	headers := env.adminHeaders(t)

	id := env.createSpellType(t, headers, "Potions")

	// Re-sending the same name with a new description must not trip the
	// unique index.
	resp := env.do(t, http.MethodPost, "/api/v1/admin/spell-type/edit/"+id,
		`{"name":"Potions","description":"brewing"}`, headers)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body %s", resp.Code, resp.Body.String())
	}
	data := decodeBody(t, resp)["data"].(map[string]any)
	if data["description"] != "brewing" {
		t.Fatalf("description not updated: %v", data)
	}
}

func TestDeleteSpellTypeRoundtrip(t *testing.T) {
	env := newTestEnv(t)
	headers := env.adminHeaders(t)

	id := env.createSpellType(t, headers, "Herbology")

	del := env.do(t, http.MethodDelete, "/api/v1/admin/spell-type/delete/"+id, "", headers)
	if del.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", del.Code)
	}
	body := decodeBody(t, del)
	if body["success"] != true || body["id"] != id {
		t.Fatalf("unexpected delete body %v", body)
	}

	again := env.do(t, http.MethodDelete, "/api/v1/admin/spell-type/delete/"+id, "", headers)
	if again.Code != http.StatusOK {
		t.Fatalf("second delete: expected 200, got %d", again.Code)
	}
	if decodeBody(t, again)["success"] != false {
		t.Fatal("expected success=false on second delete")
	}
}
