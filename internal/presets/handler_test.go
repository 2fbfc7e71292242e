package presets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func newRouter() *mux.Router {
	h := &Handler{Store: Defaults()}
	r := mux.NewRouter()
	r.HandleFunc("/api/tools/{device}/presets", h.Get).Methods("GET")
	return r
}

func TestGetPresets(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/tools/turbine/presets?system=imperial", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Device string  `json:"device"`
		System string  `json:"unit_system"`
		Fields []Field `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Device != "turbine" || res.System != "imperial" {
		t.Errorf("device/system = %s/%s", res.Device, res.System)
	}
	if len(res.Fields) != 9 {
		t.Errorf("got %d fields, want 9", len(res.Fields))
	}
}

func TestGetPresetsErrors(t *testing.T) {
	r := newRouter()
	cases := []struct {
		url  string
		want int
	}{
		{"/api/tools/reactor/presets", http.StatusNotFound},
		{"/api/tools/pump/presets?system=metric", http.StatusBadRequest},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, c.url, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != c.want {
			t.Errorf("GET %s: status %d, want %d", c.url, rec.Code, c.want)
		}
	}
}
