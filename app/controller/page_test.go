package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/dto"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/repository"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/service"
)

func newControllerForTest() *PageController {
	c := &entity.Catalog{
		Hero: entity.Hero{Brand: "VPS Showcase"},
		Groups: []entity.PlanGroup{
			{ID: "vultr", Heading: "VULTR VPS", Layout: "wide", Plans: []entity.PlanEntry{
				{Title: "A", PriceLabel: "IDR 125K"},
				{Title: "B", PriceLabel: "IDR 225K", Highlighted: true},
			}},
		},
	}
	return NewPageController(service.NewShowcaseService(repository.NewCatalogRepository(c)))
}

func doRequest(t *testing.T, handler echo.HandlerFunc, path string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if len(params) == 2 {
		ctx.SetParamNames(params[0])
		ctx.SetParamValues(params[1])
	}
	if err := handler(ctx); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, newControllerForTest().Health, "/health")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestIndexServesPage(t *testing.T) {
	rec := doRequest(t, newControllerForTest().Index, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %s", ct)
	}
	if got := strings.Count(rec.Body.String(), "data-card="); got != 2 {
		t.Fatalf("expected 2 cards, got %d", got)
	}
}

func TestListPlanGroups(t *testing.T) {
	rec := doRequest(t, newControllerForTest().ListPlanGroups, "/catalog.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListPlanGroupsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Groups) != 1 || len(resp.Groups[0].Plans) != 2 || resp.Groups[0].Layout != "wide" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetPlanGroup(t *testing.T) {
	ctrl := newControllerForTest()

	rec := doRequest(t, ctrl.GetPlanGroup, "/catalog/vultr", "id", "vultr")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp dto.PlanGroupEnvelopeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Group.ID != "vultr" || !resp.Group.Plans[1].Highlighted {
		t.Fatalf("unexpected group: %+v", resp.Group)
	}

	rec = doRequest(t, ctrl.GetPlanGroup, "/catalog/missing", "id", "missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = doRequest(t, ctrl.GetPlanGroup, "/catalog/", "id", " ")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
