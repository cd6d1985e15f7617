package order_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/medsupply-ke/medsupply-backend/internal/memstore"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/analytics"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/auth"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/catalog"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/inventory"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/needs"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/order"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/payment"
	"github.com/medsupply-ke/medsupply-backend/internal/modules/user"
	"github.com/medsupply-ke/medsupply-backend/internal/notify"
)

// testServer wires every module onto one router against the in-memory store,
// mirroring the wiring in cmd/api.
type testServer struct {
	t   *testing.T
	mux *chi.Mux
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memstore.New()
	secret := []byte("test-secret")

	userRepo := user.NewMemoryRepository(store)
	userSvc := user.NewService(userRepo)
	authSvc := auth.NewService(userRepo, secret)
	mw := auth.NewMiddleware(userRepo, secret)

	catalogSvc := catalog.NewService(catalog.NewMemoryRepository(store))
	orderSvc := order.NewService(order.NewMemoryRepository(store), notify.NewLogNotifier())
	needsSvc := needs.NewService(needs.NewMemoryRepository(store))
	analyticsSvc := analytics.NewService(analytics.NewMemoryRepository(store))
	gateway := payment.NewDarajaGateway("key", "secret", "174379", "passkey", "https://sandbox.safaricom.co.ke", "sandbox")
	paymentSvc := payment.NewService(orderSvc, gateway)

	inventorySvc := inventory.NewService(inventory.NewMemoryRepository(store))

	mux := chi.NewRouter()
	auth.NewHandler(authSvc, userSvc, mw).RegisterRoutes(mux)
	catalog.NewHandler(catalogSvc, mw).RegisterRoutes(mux)
	inventory.NewHandler(inventorySvc, mw).RegisterRoutes(mux)
	order.NewHandler(orderSvc, mw).RegisterRoutes(mux)
	needs.NewHandler(needsSvc, mw).RegisterRoutes(mux)
	analytics.NewHandler(analyticsSvc, mw).RegisterRoutes(mux)
	payment.NewHandler(paymentSvc, mw).RegisterRoutes(mux)

	return &testServer{t: t, mux: mux}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.mux.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) decode(rr *httptest.ResponseRecorder, out interface{}) {
	s.t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(out); err != nil {
		s.t.Fatalf("decode response: %v", err)
	}
}

func (s *testServer) signup(email, role string) string {
	s.t.Helper()
	rr := s.do(http.MethodPost, "/api/signup", "", map[string]string{
		"email": email, "password": "secret123", "role": role, "name": email,
	})
	if rr.Code != http.StatusOK {
		s.t.Fatalf("signup %s: status %d: %s", email, rr.Code, rr.Body)
	}
	var resp struct {
		Token string `json:"token"`
	}
	s.decode(rr, &resp)
	return resp.Token
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	vendorToken := s.signup("vendor@example.com", user.RoleVendor)
	facilityToken := s.signup("facility@example.com", user.RoleFacility)

	// Vendor lists a product with a warehouse location.
	rr := s.do(http.MethodPost, "/api/vendor/products", vendorToken, map[string]interface{}{
		"name": "IV Set - Std", "price": 5.0, "stock": 200,
		"warehouse_lat": -1.2921, "warehouse_lon": 36.8219,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add product: status %d: %s", rr.Code, rr.Body)
	}
	var added struct {
		ProductID string `json:"product_id"`
	}
	s.decode(rr, &added)

	placeReq := map[string]interface{}{
		"items": []map[string]interface{}{{"product_id": added.ProductID, "qty": 10}},
	}

	// An unverified facility cannot order.
	if rr = s.do(http.MethodPost, "/api/orders", facilityToken, placeReq); rr.Code != http.StatusBadRequest {
		t.Fatalf("unverified order: status %d: %s", rr.Code, rr.Body)
	}

	if rr = s.do(http.MethodPost, "/api/verify_license", facilityToken, map[string]string{"license_number": "KMPDC/2024/001"}); rr.Code != http.StatusOK {
		t.Fatalf("verify license: status %d: %s", rr.Code, rr.Body)
	}

	// Verification shows up on the profile immediately.
	rr = s.do(http.MethodGet, "/api/me", facilityToken, nil)
	var me struct {
		Verified bool `json:"verified"`
	}
	s.decode(rr, &me)
	if !me.Verified {
		t.Fatalf("profile not verified after license upload")
	}

	rr = s.do(http.MethodPost, "/api/orders", facilityToken, placeReq)
	if rr.Code != http.StatusCreated {
		t.Fatalf("place order: status %d: %s", rr.Code, rr.Body)
	}
	var placed struct {
		OrderID string `json:"order_id"`
	}
	s.decode(rr, &placed)

	// Stock is decremented in the shared catalog.
	rr = s.do(http.MethodGet, "/api/products", facilityToken, nil)
	var listings []struct {
		Stock int `json:"stock"`
	}
	s.decode(rr, &listings)
	if len(listings) != 1 || listings[0].Stock != 190 {
		t.Fatalf("expected stock 190 after order, got %+v", listings)
	}

	// Both sides of the trade see the order.
	for _, token := range []string{facilityToken, vendorToken} {
		rr = s.do(http.MethodGet, "/api/orders", token, nil)
		var orders []struct {
			ID          string  `json:"id"`
			TotalAmount float64 `json:"total_amount"`
		}
		s.decode(rr, &orders)
		if len(orders) != 1 || orders[0].ID != placed.OrderID || orders[0].TotalAmount != 50.0 {
			t.Fatalf("order listing wrong: %+v", orders)
		}
	}

	rr = s.do(http.MethodGet, "/api/orders/"+placed.OrderID+"/courier_link?lat=-1.30&lon=36.90", facilityToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("courier link: status %d: %s", rr.Code, rr.Body)
	}
	var link struct {
		CourierLink struct {
			UberApp string `json:"uber_app"`
		} `json:"courier_link"`
	}
	s.decode(rr, &link)
	if link.CourierLink.UberApp == "" {
		t.Fatalf("courier link missing: %s", rr.Body)
	}

	rr = s.do(http.MethodPost, "/api/pay/order/"+placed.OrderID, facilityToken, map[string]string{"phone": "254712345678"})
	if rr.Code != http.StatusOK {
		t.Fatalf("pay order: status %d: %s", rr.Code, rr.Body)
	}
	var pay struct {
		OK bool `json:"ok"`
	}
	s.decode(rr, &pay)
	if !pay.OK {
		t.Fatalf("payment not acknowledged: %s", rr.Body)
	}

	// Pending orders do not count as committed spend.
	rr = s.do(http.MethodGet, "/api/analytics/spend", facilityToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("spend: status %d: %s", rr.Code, rr.Body)
	}
	var spend struct {
		TotalSpend  float64 `json:"total_spend"`
		OrdersCount int     `json:"orders_count"`
	}
	s.decode(rr, &spend)
	if spend.TotalSpend != 0 || spend.OrdersCount != 0 {
		t.Fatalf("pending order counted as spend: %+v", spend)
	}

	// Once the vendor confirms, the order becomes committed spend.
	rr = s.do(http.MethodPost, "/api/orders/"+placed.OrderID+"/status", vendorToken, map[string]string{"status": "confirmed"})
	if rr.Code != http.StatusOK {
		t.Fatalf("confirm order: status %d: %s", rr.Code, rr.Body)
	}
	rr = s.do(http.MethodGet, "/api/analytics/spend", facilityToken, nil)
	s.decode(rr, &spend)
	if spend.TotalSpend != 50.0 || spend.OrdersCount != 1 {
		t.Fatalf("confirmed order not counted as spend: %+v", spend)
	}

	// The vendor's inventory report reflects the decremented stock.
	rr = s.do(http.MethodGet, "/api/vendor/inventory", vendorToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("inventory: status %d: %s", rr.Code, rr.Body)
	}
	var report struct {
		Items []struct {
			Stock int  `json:"stock"`
			Low   bool `json:"low"`
		} `json:"items"`
	}
	s.decode(rr, &report)
	if len(report.Items) != 1 || report.Items[0].Stock != 190 {
		t.Fatalf("inventory report wrong: %s", rr.Body)
	}
}

func TestRouteGuards(t *testing.T) {
	s := newTestServer(t)
	vendorToken := s.signup("vendor@example.com", user.RoleVendor)
	facilityToken := s.signup("facility@example.com", user.RoleFacility)

	cases := []struct {
		name         string
		method, path string
		token        string
		want         int
	}{
		{"orders need auth", http.MethodPost, "/api/orders", "", http.StatusUnauthorized},
		{"vendors cannot place orders", http.MethodPost, "/api/orders", vendorToken, http.StatusForbidden},
		{"facilities cannot list products for sale", http.MethodPost, "/api/vendor/products", facilityToken, http.StatusForbidden},
		{"spend is facility-only", http.MethodGet, "/api/analytics/spend", vendorToken, http.StatusForbidden},
		{"needs are facility-only", http.MethodPost, "/api/needs", vendorToken, http.StatusForbidden},
		{"payment is facility-only", http.MethodPost, "/api/pay/order/x", vendorToken, http.StatusForbidden},
		{"catalog needs auth", http.MethodGet, "/api/products", "", http.StatusUnauthorized},
		{"inventory is vendor-only", http.MethodGet, "/api/vendor/inventory", facilityToken, http.StatusForbidden},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if rr := s.do(c.method, c.path, c.token, map[string]string{}); rr.Code != c.want {
				t.Fatalf("status %d, want %d: %s", rr.Code, c.want, rr.Body)
			}
		})
	}
}

func TestNeedsAndRecommendationsOverHTTP(t *testing.T) {
	s := newTestServer(t)
	vendorToken := s.signup("vendor@example.com", user.RoleVendor)
	facilityToken := s.signup("facility@example.com", user.RoleFacility)

	for _, p := range []map[string]interface{}{
		{"name": "Surgical Gloves - M", "price": 0.5, "stock": 1000},
		{"name": "Surgical Gloves - L", "price": 0.4, "stock": 5},
	} {
		if rr := s.do(http.MethodPost, "/api/vendor/products", vendorToken, p); rr.Code != http.StatusCreated {
			t.Fatalf("add product: status %d: %s", rr.Code, rr.Body)
		}
	}

	rr := s.do(http.MethodPost, "/api/needs", facilityToken, map[string]interface{}{
		"needs": []map[string]interface{}{{"name": "gloves", "qty": 100}},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("upload needs: status %d: %s", rr.Code, rr.Body)
	}

	rr = s.do(http.MethodGet, "/api/procure/recommend", facilityToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("recommend: status %d: %s", rr.Code, rr.Body)
	}
	var recs []struct {
		Need    string `json:"need"`
		Product *struct {
			Price float64 `json:"price"`
		} `json:"product"`
	}
	s.decode(rr, &recs)
	if len(recs) != 1 || recs[0].Product == nil {
		t.Fatalf("expected one matched recommendation, got %s", rr.Body)
	}
	// The cheaper product is understocked, so the 0.5 one qualifies.
	if recs[0].Product.Price != 0.5 {
		t.Fatalf("expected in-stock match at 0.5, got %+v", recs[0].Product)
	}
}
