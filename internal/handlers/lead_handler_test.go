package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"acuario/internal/middleware"
	"acuario/internal/models"
)

// 12 лидов, id 1 — самый свежий (список уже в порядке create_at DESC).
func seedContacts(n int) *fakeContactRepo {
	repo := &fakeContactRepo{}
	now := time.Now()
	for i := 1; i <= n; i++ {
		repo.contacts = append(repo.contacts, &models.Contact{
			ID:        i,
			FullName:  fmt.Sprintf("Lead %d", i),
			Email:     fmt.Sprintf("lead%d@example.com", i),
			Phone:     "5551234567",
			Message:   "mensaje de prueba",
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
			StateID:   1,
		})
	}
	return repo
}

func TestLeads_Pagination(t *testing.T) {
	repo := seedContacts(12)
	r := newTestRouter(repo, newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodGet, "/api/leads?page=2&limit=5", nil, adminToken(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	data := body["data"].([]any)
	if len(data) != 5 {
		t.Fatalf("expected 5 rows on page 2, got %d", len(data))
	}
	// страница 2 при limit=5 — элементы 6–10 по убыванию даты
	for i, raw := range data {
		row := raw.(map[string]any)
		if got := int(row["id"].(float64)); got != 6+i {
			t.Errorf("row %d: expected id %d, got %d", i, 6+i, got)
		}
	}

	pagination := body["pagination"].(map[string]any)
	if got := int(pagination["total"].(float64)); got != 12 {
		t.Errorf("expected total 12, got %d", got)
	}
	if got := int(pagination["totalPages"].(float64)); got != 3 {
		t.Errorf("expected totalPages 3, got %d", got)
	}
}

func TestLeads_DefaultsOnNonNumericQuery(t *testing.T) {
	repo := seedContacts(3)
	r := newTestRouter(repo, newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodGet, "/api/leads?page=abc&limit=xyz", nil, adminToken(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	pagination := decodeBody(t, rec)["pagination"].(map[string]any)
	if int(pagination["page"].(float64)) != 1 || int(pagination["limit"].(float64)) != 10 {
		t.Errorf("expected defaults page=1 limit=10, got %v", pagination)
	}
}

func TestLeads_EmptyTable(t *testing.T) {
	r := newTestRouter(&fakeContactRepo{}, newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodGet, "/api/leads", nil, adminToken(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if data, ok := body["data"].([]any); !ok || len(data) != 0 {
		t.Errorf("expected empty data array, got %v", body["data"])
	}
}

func TestLeadGet_NotFound(t *testing.T) {
	r := newTestRouter(seedContacts(2), newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodGet, "/api/leads/99", nil, adminToken(t))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["mensaje"] != "Lead no encontrado" {
		t.Errorf("unexpected message: %v", body["mensaje"])
	}
}

func TestLeadGet_Found(t *testing.T) {
	r := newTestRouter(seedContacts(2), newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodGet, "/api/leads/2", nil, adminToken(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if int(body["id"].(float64)) != 2 {
		t.Errorf("expected lead 2, got %v", body["id"])
	}
	if _, ok := body["fullName"]; !ok {
		t.Error("lead JSON must expose fullName")
	}
}

func TestLeadUpdateState_NotFoundLeavesTableUnchanged(t *testing.T) {
	repo := seedContacts(2)
	r := newTestRouter(repo, newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodPut, "/api/leads/99/state", map[string]any{"id_state_id": 3}, adminToken(t))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	for _, c := range repo.contacts {
		if c.StateID != 1 {
			t.Errorf("lead %d state changed unexpectedly", c.ID)
		}
	}
}

func TestLeadUpdateState_MissingField(t *testing.T) {
	r := newTestRouter(seedContacts(2), newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodPut, "/api/leads/1/state", map[string]any{}, adminToken(t))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["mensaje"] != "El campo id_state_id es obligatorio." {
		t.Errorf("unexpected message: %v", body["mensaje"])
	}
}

func TestLeadUpdateState_Success(t *testing.T) {
	repo := seedContacts(2)
	r := newTestRouter(repo, newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodPut, "/api/leads/1/state", map[string]any{"id_state_id": 2}, adminToken(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["mensaje"] != "Estado actualizado correctamente." {
		t.Errorf("unexpected message: %v", body["mensaje"])
	}
	if repo.contacts[0].StateID != 2 {
		t.Errorf("state not updated, got %d", repo.contacts[0].StateID)
	}
}

func TestStates_List(t *testing.T) {
	states := &fakeStateRepo{states: []*models.State{
		{ID: 1, Label: "Nuevo"},
		{ID: 2, Label: "Contactado"},
	}}
	r := newTestRouter(&fakeContactRepo{}, newFakeUserRepo(), states, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodGet, "/api/states", nil, adminToken(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode states: %v", err)
	}
	if len(out) != 2 || out[0]["label"] != "Nuevo" {
		t.Errorf("unexpected states payload: %v", out)
	}
}

// --- access guard ---

func TestLeads_RequireToken(t *testing.T) {
	r := newTestRouter(seedContacts(1), newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	rec := doJSON(t, r, http.MethodGet, "/api/leads", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Token requerido" {
		t.Errorf("unexpected message: %v", body["error"])
	}
}

func TestLeads_ForbiddenForRegularRole(t *testing.T) {
	r := newTestRouter(seedContacts(1), newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	token, err := middleware.IssueToken(testSecret, &models.User{ID: 7, Email: "user@example.com", RoleID: 1})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec := doJSON(t, r, http.MethodGet, "/api/leads", nil, token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Acceso denegado: Rol no autorizado" {
		t.Errorf("unexpected message: %v", body["error"])
	}
}

func TestLeads_ExpiredTokenRejected(t *testing.T) {
	r := newTestRouter(seedContacts(1), newFakeUserRepo(), &fakeStateRepo{}, &fakeCaptcha{ok: true})

	claims := &middleware.Claims{
		UserID: 1,
		RoleID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	rec := doJSON(t, r, http.MethodGet, "/api/leads", nil, expired)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Token inválido o expirado" {
		t.Errorf("unexpected message: %v", body["error"])
	}
}
