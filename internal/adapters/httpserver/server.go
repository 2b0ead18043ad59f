package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/layensweets/site/internal/adapters/assets"
	"github.com/layensweets/site/internal/adapters/llm"
	"github.com/layensweets/site/internal/adapters/repo/sitedata"
	"github.com/layensweets/site/internal/auth"
	"github.com/layensweets/site/internal/domain"
	"github.com/layensweets/site/internal/usecase"
)

const adminCookie = "ls_admin"

type Server struct {
	mux       *http.ServeMux
	data      *sitedata.Repository
	orders    *usecase.OrderUC
	catalog   *usecase.CatalogUC
	concierge *llm.Concierge
}

func New(data *sitedata.Repository, orders *usecase.OrderUC, catalog *usecase.CatalogUC, concierge *llm.Concierge) http.Handler {
	s := &Server{mux: http.NewServeMux(), data: data, orders: orders, catalog: catalog, concierge: concierge}
	s.routes()
	return Chain(s.mux,
		RateLimit(120),
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	s.mux.HandleFunc("/api/content", s.handleContent)
	s.mux.HandleFunc("/api/products", s.handleProducts)
	s.mux.HandleFunc("/api/recipes", s.handleRecipes)
	s.mux.HandleFunc("/api/orders", s.handleCreateOrder)
	s.mux.HandleFunc("/api/chat", s.handleChat)

	s.mux.HandleFunc("/api/admin/login", s.handleAdminLogin)
	s.mux.HandleFunc("/api/admin/logout", s.handleAdminLogout)
	s.mux.HandleFunc("/api/admin/orders", s.handleAdminOrders)
	s.mux.HandleFunc("/api/admin/orders/toggle", s.handleOrderToggle)
	s.mux.HandleFunc("/api/admin/orders/export", s.handleOrdersExport)
	s.mux.HandleFunc("/api/admin/products", s.handleAdminSaveProduct)
	s.mux.HandleFunc("/api/admin/products/", s.handleAdminDeleteProduct)
	s.mux.HandleFunc("/api/admin/recipes", s.handleAdminSaveRecipe)
	s.mux.HandleFunc("/api/admin/recipes/", s.handleAdminDeleteRecipe)
	s.mux.HandleFunc("/api/admin/content", s.handleAdminContent)
	s.mux.HandleFunc("/api/admin/upload", s.handleAdminUpload)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

// --- public ---

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	writeJSON(w, 200, s.data.Content(r.Context()))
}

// handleProducts serves the catalog. The public site only sees available
// products; an authenticated admin session gets everything.
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	products := s.data.Products(r.Context())
	if s.isAdminSession(r) {
		writeJSON(w, 200, products)
		return
	}
	visible := []domain.Product{}
	for _, p := range products {
		if p.Available {
			visible = append(visible, p)
		}
	}
	writeJSON(w, 200, visible)
}

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	writeJSON(w, 200, s.data.Recipes(r.Context()))
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		Cart     map[string]int `json:"cart"`
		Customer struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
			Notes string `json:"notes"`
		} `json:"customer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid body"})
		return
	}
	name := strings.TrimSpace(req.Customer.Name)
	phone := strings.TrimSpace(req.Customer.Phone)
	if name == "" || phone == "" {
		// Validation failures block locally, before any store call.
		writeJSON(w, 400, map[string]string{"error": "name and phone are required"})
		return
	}
	order, err := s.orders.Submit(r.Context(), req.Cart, usecase.CustomerInfo{
		Name:  name,
		Phone: phone,
		Notes: strings.TrimSpace(req.Customer.Notes),
	})
	if errors.Is(err, domain.ErrEmptyCart) {
		writeJSON(w, 400, map[string]string{"error": "cart is empty"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("order submit")
		writeJSON(w, 502, map[string]string{"error": "could not save your order, please try again"})
		return
	}
	writeJSON(w, 201, order)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		Message  string `json:"message"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeJSON(w, 400, map[string]string{"error": "message required"})
		return
	}
	reply, err := s.concierge.Reply(r.Context(), req.Language, req.Message,
		s.data.Content(r.Context()), s.data.Products(r.Context()))
	if err != nil {
		log.Warn().Err(err).Msg("concierge")
		writeJSON(w, 502, map[string]string{"error": "concierge unavailable"})
		return
	}
	writeJSON(w, 200, map[string]string{"reply": reply})
}

// --- admin ---

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		Passphrase string `json:"passphrase"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if !auth.Verify(req.Passphrase) {
		// One generic denial: the caller cannot tell a wrong passphrase
		// from a verifier problem.
		writeJSON(w, 401, map[string]string{"error": "access denied"})
		return
	}
	setAdminSession(w, r)
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

func (s *Server) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	secure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{Name: adminCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true, Secure: secure, SameSite: http.SameSiteStrictMode})
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

func (s *Server) handleAdminOrders(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	writeJSON(w, 200, s.data.Orders(r.Context()))
}

func (s *Server) handleOrderToggle(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, 400, map[string]string{"error": "order id required"})
		return
	}
	status, err := s.orders.ToggleStatus(r.Context(), req.ID)
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, 404, map[string]string{"error": "order not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("order", req.ID).Msg("status toggle")
		writeJSON(w, 502, map[string]string{"error": "save failed"})
		return
	}
	writeJSON(w, 200, map[string]string{"id": req.ID, "status": string(status)})
}

func (s *Server) handleAdminSaveProduct(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid product"})
		return
	}
	if err := s.catalog.SaveProduct(r.Context(), &p); err != nil {
		s.writeSaveError(w, err)
		return
	}
	writeJSON(w, 200, p)
}

func (s *Server) handleAdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodDelete {
		http.Error(w, "method", 405)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/products/")
	if id == "" {
		writeJSON(w, 400, map[string]string{"error": "product id required"})
		return
	}
	if err := s.catalog.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, 404, map[string]string{"error": "product not found"})
			return
		}
		s.writeSaveError(w, err)
		return
	}
	writeJSON(w, 200, map[string]string{"status": "deleted"})
}

func (s *Server) handleAdminSaveRecipe(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var rec domain.Recipe
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid recipe"})
		return
	}
	if err := s.catalog.SaveRecipe(r.Context(), &rec); err != nil {
		s.writeSaveError(w, err)
		return
	}
	writeJSON(w, 200, rec)
}

func (s *Server) handleAdminDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodDelete {
		http.Error(w, "method", 405)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/recipes/")
	if id == "" {
		writeJSON(w, 400, map[string]string{"error": "recipe id required"})
		return
	}
	if err := s.catalog.DeleteRecipe(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, 404, map[string]string{"error": "recipe not found"})
			return
		}
		s.writeSaveError(w, err)
		return
	}
	writeJSON(w, 200, map[string]string{"status": "deleted"})
}

func (s *Server) handleAdminContent(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var c domain.SiteContent
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, 400, map[string]string{"error": "invalid content"})
		return
	}
	if err := s.catalog.UpdateContent(r.Context(), c); err != nil {
		s.writeSaveError(w, err)
		return
	}
	writeJSON(w, 200, c)
}

// handleAdminUpload inlines an uploaded image and hands the data URI back to
// the dashboard, which places it into whichever field it is editing. The size
// cap is enforced here, before anything touches the store.
func (s *Server) handleAdminUpload(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if err := r.ParseMultipartForm(assets.MaxBytes + 4096); err != nil {
		writeJSON(w, 400, map[string]string{"error": "multipart form expected"})
		return
	}
	f, fh, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, 400, map[string]string{"error": "image file required"})
		return
	}
	defer f.Close()
	if fh.Size > assets.MaxBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "image too large, use images under 1MB"})
		return
	}
	uri, err := assets.Inline(f)
	if errors.Is(err, domain.ErrAssetTooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "image too large, use images under 1MB"})
		return
	}
	if err != nil {
		writeJSON(w, 400, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, 200, map[string]string{"dataUri": uri})
}

// writeSaveError distinguishes the oversized-payload case from a generic
// store failure, per the write-failure taxonomy.
func (s *Server) writeSaveError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrPayloadTooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "document too large for the store, remove or shrink inlined images"})
		return
	}
	log.Error().Err(err).Msg("admin save")
	writeJSON(w, 502, map[string]string{"error": "save failed"})
}

// --- session ---

func sessionSecret() []byte {
	k := os.Getenv("SESSION_KEY")
	if k == "" {
		k = "dev-insecure"
	}
	return []byte(k)
}

func setAdminSession(w http.ResponseWriter, r *http.Request) {
	payload := []byte(time.Now().UTC().Format(time.RFC3339))
	h := hmac.New(sha256.New, sessionSecret())
	h.Write(payload)
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	val := sig + "." + base64.RawURLEncoding.EncodeToString(payload)
	secure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{Name: adminCookie, Value: val, Path: "/", MaxAge: 60 * 60 * 12, HttpOnly: true, Secure: secure, SameSite: http.SameSiteStrictMode})
}

func (s *Server) isAdminSession(r *http.Request) bool {
	c, err := r.Cookie(adminCookie)
	if err != nil || c.Value == "" {
		return false
	}
	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return false
	}
	sig, _ := base64.RawURLEncoding.DecodeString(parts[0])
	payload, _ := base64.RawURLEncoding.DecodeString(parts[1])
	h := hmac.New(sha256.New, sessionSecret())
	h.Write(payload)
	return hmac.Equal(sig, h.Sum(nil))
}

func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if s.isAdminSession(r) {
		return true
	}
	writeJSON(w, 401, map[string]string{"error": "unauthorized"})
	return false
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
