package httpserver

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/layensweets/site/internal/adapters/llm"
	"github.com/layensweets/site/internal/adapters/repo/sitedata"
	"github.com/layensweets/site/internal/adapters/store"
	"github.com/layensweets/site/internal/domain"
	"github.com/layensweets/site/internal/usecase"
)

func newTestServer(t *testing.T) (*httptest.Server, *sitedata.Repository) {
	t.Helper()
	data := sitedata.New(store.NewMemoryKV())
	orders := &usecase.OrderUC{Data: data}
	catalog := &usecase.CatalogUC{Data: data}
	h := New(data, orders, catalog, llm.New(""))
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, data
}

func login(t *testing.T, ts *httptest.Server) []*http.Cookie {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/admin/login", "application/json",
		strings.NewReader(`{"passphrase":"99601272"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("login: status %d", resp.StatusCode)
	}
	return resp.Cookies()
}

func doJSON(t *testing.T, method, url, body string, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestPublicCatalogHidesUnavailable(t *testing.T) {
	ts, _ := newTestServer(t)

	cookies := login(t, ts)
	resp := doJSON(t, http.MethodPut, ts.URL+"/api/admin/products",
		`{"name":"Hidden Cake","price":40,"category":"Cake","available":false}`, cookies)
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("save product: status %d", resp.StatusCode)
	}

	resp, err := http.Get(ts.URL + "/api/products")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var visible []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&visible); err != nil {
		t.Fatal(err)
	}
	for _, p := range visible {
		if !p.Available {
			t.Errorf("unavailable product leaked to the public list: %+v", p)
		}
	}

	// The admin view keeps everything.
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/products", "", cookies)
	defer resp.Body.Close()
	var all []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		t.Fatal(err)
	}
	if len(all) != len(visible)+1 {
		t.Errorf("admin list should include the hidden product: %d vs %d", len(all), len(visible))
	}
}

func TestOrderSubmission(t *testing.T) {
	ts, data := newTestServer(t)

	// Missing phone blocks before anything is written.
	resp, _ := http.Post(ts.URL+"/api/orders", "application/json",
		strings.NewReader(`{"cart":{"m1":1},"customer":{"name":"Amira"}}`))
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Errorf("missing phone: status %d, want 400", resp.StatusCode)
	}

	resp, _ = http.Post(ts.URL+"/api/orders", "application/json",
		strings.NewReader(`{"cart":{},"customer":{"name":"Amira","phone":"1"}}`))
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Errorf("empty cart: status %d, want 400", resp.StatusCode)
	}

	body := `{"cart":{"m1":2,"s1":1},"customer":{"name":"Amira","phone":"96948548","notes":"pour samedi"}}`
	resp, err := http.Post(ts.URL+"/api/orders", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 201 {
		t.Fatalf("submit: status %d", resp.StatusCode)
	}
	var order domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		t.Fatal(err)
	}
	// Defaults catalog: m1 is 3.5, s1 is 2 with dressage.
	if order.TotalPrice != 3.5*2+2 {
		t.Errorf("total = %v", order.TotalPrice)
	}

	got := data.Orders(resp.Request.Context())
	if len(got) != 1 || got[0].ID != order.ID {
		t.Errorf("order not persisted newest-first: %+v", got)
	}
}

func TestAdminRequiresSession(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, ep := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/orders"},
		{http.MethodPost, "/api/admin/orders/toggle"},
		{http.MethodPut, "/api/admin/products"},
		{http.MethodPut, "/api/admin/content"},
		{http.MethodGet, "/api/admin/orders/export"},
	} {
		resp := doJSON(t, ep.method, ts.URL+ep.path, "", nil)
		resp.Body.Close()
		if resp.StatusCode != 401 {
			t.Errorf("%s %s without session: status %d, want 401", ep.method, ep.path, resp.StatusCode)
		}
	}

	resp, _ := http.Post(ts.URL+"/api/admin/login", "application/json",
		strings.NewReader(`{"passphrase":"wrong"}`))
	resp.Body.Close()
	if resp.StatusCode != 401 {
		t.Errorf("wrong passphrase: status %d, want 401", resp.StatusCode)
	}
}

func TestOrderToggleEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	cookies := login(t, ts)

	resp, _ := http.Post(ts.URL+"/api/orders", "application/json",
		strings.NewReader(`{"cart":{"m1":1},"customer":{"name":"A","phone":"1"}}`))
	var order domain.Order
	_ = json.NewDecoder(resp.Body).Decode(&order)
	resp.Body.Close()

	want := []string{"Processed", "Completed", "Pending"}
	for _, expected := range want {
		resp := doJSON(t, http.MethodPost, ts.URL+"/api/admin/orders/toggle", `{"id":"`+order.ID+`"}`, cookies)
		var out map[string]string
		_ = json.NewDecoder(resp.Body).Decode(&out)
		resp.Body.Close()
		if out["status"] != expected {
			t.Errorf("toggle: got %q, want %q", out["status"], expected)
		}
	}
}

func TestUploadRejectsOversizeBeforeWrite(t *testing.T) {
	ts, data := newTestServer(t)
	cookies := login(t, ts)

	before := len(data.Products(httptest.NewRequest("GET", "/", nil).Context()))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "huge.png")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
	_, _ = fw.Write(make([]byte, 1<<20))
	mw.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversize upload: status %d, want 413", resp.StatusCode)
	}

	after := len(data.Products(httptest.NewRequest("GET", "/", nil).Context()))
	if after != before {
		t.Error("rejected upload must not touch the store")
	}
}
