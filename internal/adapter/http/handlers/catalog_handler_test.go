package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auto_accessories/internal/adapter/http/handlers/mocks"
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.GET("/v1/products/:id", h.GetProduct)
	r.PUT("/v1/admin/products/:id", h.UpsertProduct)
	r.GET("/v1/vehicles", h.ListVehicles)
	r.GET("/v1/installation/rates", h.InstallationRates)
	return r, uc
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	r, uc := newCatalogRouter(t)
	discount := 800.0
	uc.EXPECT().ListProducts(gomock.Any(), "electronics").Return([]entities.Product{
		{ID: "p1", Name: "Dashcam", Price: 1000, DiscountPrice: &discount, Stock: 4},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products?category=electronics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["effective_price"] != float64(800) || body[0]["original_price"] != float64(1000) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().GetProduct(gomock.Any(), "missing").Return(entities.Product{}, usecase.ErrProductNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/missing", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PRODUCT_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().GetProduct(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Dashcam", Price: 1000, Stock: 1}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/p1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_UpsertProduct(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		r, _ := newCatalogRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, newSessionRequest(http.MethodPut, "/v1/admin/products/p1", `{"price":10}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UpsertProduct(gomock.Any(), gomock.Any()).Return(entities.Product{}, usecase.ErrInvalidProduct)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newSessionRequest(http.MethodPut, "/v1/admin/products/p1", `{"name":"Mat","price":10,"stock":-1}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards override", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UpsertProduct(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, p entities.Product) (entities.Product, error) {
			if p.ID != "p1" || p.InstallationOverride == nil || p.InstallationOverride.IsAvailable {
				t.Fatalf("unexpected product: %+v", p)
			}
			return p, nil
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newSessionRequest(http.MethodPut, "/v1/admin/products/p1", `{"name":"Mat","price":10,"installation_override":{"is_available":false}}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("storage error", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UpsertProduct(gomock.Any(), gomock.Any()).Return(entities.Product{}, errors.New("db"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newSessionRequest(http.MethodPut, "/v1/admin/products/p1", `{"name":"Mat","price":10}`))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_StaticTables(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().ListVehicles().Return([]entities.VehicleBrand{
		{Brand: "Hyundai", Models: []entities.VehicleModel{{Name: "Creta", Segment: entities.SegmentSUV}}},
	})
	uc.EXPECT().InstallationRates().Return(entities.InstallationRateMatrix{entities.SegmentSUV: 800})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/vehicles", nil))
	if w.Code != http.StatusOK || !json.Valid(w.Body.Bytes()) {
		t.Fatalf("vehicles: unexpected response %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/installation/rates", nil))
	var rates []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &rates)
	if len(rates) != 1 || rates[0]["segment"] != "SUV" || rates[0]["rate"] != float64(800) {
		t.Fatalf("rates: unexpected body %s", w.Body.String())
	}
}
