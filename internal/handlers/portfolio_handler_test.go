package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finpredictor/internal/errors"
	"finpredictor/internal/models"
	"finpredictor/internal/services"
)

func setupPortfolioRouter(svc services.AssetServicer) *gin.Engine {
	h := NewPortfolioHandler(svc)
	r := newTestRouter()
	r.POST("/projection", h.Project)
	r.GET("/:user_id", h.GetPortfolio)
	r.POST("/:user_id/assets", h.AddAsset)
	r.PUT("/:user_id/assets/:asset_id/price", h.UpdateAssetPrice)
	r.DELETE("/:user_id/assets/:asset_id", h.DeleteAsset)
	return r
}

func TestPortfolioHandler_GetPortfolio(t *testing.T) {
	t.Run("returns an empty portfolio for a new user", func(t *testing.T) {
		rec := doRequest(setupPortfolioRouter(&mockAssetService{}), http.MethodGet, "/u-1", "")
		assertStatus(t, rec, http.StatusOK)

		if rec.Body.String() != `{"user_id":"u-1","assets":[]}` {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("renders the wire shape used by valuation", func(t *testing.T) {
		svc := &mockAssetService{
			getPortfolioFn: func(userID string) (*models.Portfolio, error) {
				return &models.Portfolio{UserID: userID, Assets: []models.Asset{
					{ID: "a-1", Type: models.AssetTypeStock, CurrentPrice: 101.5, Details: models.StockDetails{Exchange: "NSE"}},
				}}, nil
			},
		}

		rec := doRequest(setupPortfolioRouter(svc), http.MethodGet, "/u-1", "")
		assertStatus(t, rec, http.StatusOK)

		var body struct {
			Assets []struct {
				ID           string  `json:"id"`
				CurrentPrice float64 `json:"current_price"`
			} `json:"assets"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.Assets) != 1 || body.Assets[0].ID != "a-1" || body.Assets[0].CurrentPrice != 101.5 {
			t.Errorf("unexpected assets: %+v", body.Assets)
		}
	})
}

func TestPortfolioHandler_AddAsset(t *testing.T) {
	t.Run("decodes details by type", func(t *testing.T) {
		var got services.AssetInput
		svc := &mockAssetService{
			addAssetFn: func(userID string, in services.AssetInput) (*models.Asset, error) {
				if userID != "u-1" {
					t.Errorf("unexpected user %q", userID)
				}
				got = in
				return &models.Asset{ID: "a-1", Type: in.Type, Details: in.Details}, nil
			},
		}
		body := `{"type":"mutual_fund","symbol":"PPFAS","name":"Flexi Cap","units":12.5,"buy_price":64.2,` +
			`"details":{"scheme_code":"122639","expense_ratio":0.0063}}`

		rec := doRequest(setupPortfolioRouter(svc), http.MethodPost, "/u-1/assets", body)
		assertStatus(t, rec, http.StatusOK)

		mf, ok := got.Details.(models.MutualFundDetails)
		if !ok {
			t.Fatalf("expected MutualFundDetails, got %T", got.Details)
		}
		if mf.SchemeCode != "122639" || got.Units != 12.5 || got.BuyPrice != 64.2 {
			t.Errorf("unexpected input: %+v", got)
		}
	})

	t.Run("defaults missing details to the empty variant", func(t *testing.T) {
		var got services.AssetInput
		svc := &mockAssetService{
			addAssetFn: func(_ string, in services.AssetInput) (*models.Asset, error) {
				got = in
				return &models.Asset{Type: in.Type, Details: in.Details}, nil
			},
		}

		rec := doRequest(setupPortfolioRouter(svc), http.MethodPost, "/u-1/assets", `{"type":"cash","symbol":"INR"}`)
		assertStatus(t, rec, http.StatusOK)
		if _, ok := got.Details.(models.CashDetails); !ok {
			t.Errorf("expected CashDetails, got %T", got.Details)
		}
	})

	t.Run("returns 400 on invalid input", func(t *testing.T) {
		bodies := []string{
			`{"symbol":"BTC"}`,
			`{"type":"nft","symbol":"APE"}`,
			`{"type":"crypto"}`,
			`{"type":"stock","symbol":"INFY","units":-1}`,
			`{"type":"bond","symbol":"GSEC","details":{"coupon_rate":"high"}}`,
		}
		for _, body := range bodies {
			rec := doRequest(setupPortfolioRouter(&mockAssetService{}), http.MethodPost, "/u-1/assets", body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("body %s: expected 400, got %d", body, rec.Code)
				continue
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		}
	})
}

func TestPortfolioHandler_UpdateAssetPrice(t *testing.T) {
	t.Run("passes the new price", func(t *testing.T) {
		var gotPrice float64
		svc := &mockAssetService{
			updateAssetPriceFn: func(userID, assetID string, price float64) (*models.Asset, error) {
				if userID != "u-1" || assetID != "a-9" {
					t.Errorf("unexpected ids %q/%q", userID, assetID)
				}
				gotPrice = price
				return &models.Asset{ID: assetID, Type: models.AssetTypeOther, Details: models.OtherDetails{}, CurrentPrice: price}, nil
			},
		}

		rec := doRequest(setupPortfolioRouter(svc), http.MethodPut, "/u-1/assets/a-9/price", `{"current_price":0}`)
		assertStatus(t, rec, http.StatusOK)
		if gotPrice != 0 {
			t.Errorf("expected price 0, got %v", gotPrice)
		}
	})

	t.Run("requires a non-negative price", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"current_price":-3}`} {
			rec := doRequest(setupPortfolioRouter(&mockAssetService{}), http.MethodPut, "/u-1/assets/a-9/price", body)
			assertStatus(t, rec, http.StatusBadRequest)
		}
	})

	t.Run("returns 404 for an unknown asset", func(t *testing.T) {
		svc := &mockAssetService{
			updateAssetPriceFn: func(string, string, float64) (*models.Asset, error) {
				return nil, apperrors.ErrAssetNotFound
			},
		}

		rec := doRequest(setupPortfolioRouter(svc), http.MethodPut, "/u-1/assets/nope/price", `{"current_price":10}`)
		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "ASSET_NOT_FOUND")
	})
}

func TestPortfolioHandler_DeleteAsset(t *testing.T) {
	t.Run("acknowledges the delete", func(t *testing.T) {
		rec := doRequest(setupPortfolioRouter(&mockAssetService{}), http.MethodDelete, "/u-1/assets/a-1", "")
		assertStatus(t, rec, http.StatusOK)
		if parseJSON(t, rec)["ok"] != true {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("returns 404 for an unknown asset", func(t *testing.T) {
		svc := &mockAssetService{
			deleteAssetFn: func(string, string) error { return apperrors.ErrAssetNotFound },
		}

		rec := doRequest(setupPortfolioRouter(svc), http.MethodDelete, "/u-1/assets/a-1", "")
		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "ASSET_NOT_FOUND")
	})
}

func TestPortfolioHandler_Project(t *testing.T) {
	decode := func(t *testing.T, body []byte) []models.ProjectionPoint {
		t.Helper()
		var points []models.ProjectionPoint
		if err := json.Unmarshal(body, &points); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return points
	}

	t.Run("defaults to one year", func(t *testing.T) {
		rec := doRequest(setupPortfolioRouter(&mockAssetService{}), http.MethodPost, "/projection",
			`{"starting_amount":1000,"monthly_sip":0,"expected_return":0.12}`)
		assertStatus(t, rec, http.StatusOK)

		points := decode(t, rec.Body.Bytes())
		if len(points) != 13 {
			t.Fatalf("expected 13 points, got %d", len(points))
		}
		if points[0].Value != 1000 || points[12].Value != 1126.83 {
			t.Errorf("unexpected values: first %v last %v", points[0].Value, points[12].Value)
		}
	})

	t.Run("honours years and expense ratio", func(t *testing.T) {
		rec := doRequest(setupPortfolioRouter(&mockAssetService{}), http.MethodPost, "/projection",
			`{"starting_amount":0,"monthly_sip":100,"years":0.25,"expected_return":0.13,"expense_ratio":0.01}`)
		assertStatus(t, rec, http.StatusOK)

		points := decode(t, rec.Body.Bytes())
		if len(points) != 4 || points[3].Value != 303.01 {
			t.Errorf("unexpected points: %+v", points)
		}
	})

	t.Run("returns 400 on negative amounts", func(t *testing.T) {
		rec := doRequest(setupPortfolioRouter(&mockAssetService{}), http.MethodPost, "/projection", `{"starting_amount":-1}`)
		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
