package facilities

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sgchoi-dev/facilitybook/internal/db"
	"github.com/sgchoi-dev/facilitybook/internal/registry"
	"github.com/sgchoi-dev/facilitybook/internal/testutil"
)

func setupFacilitiesTest(t *testing.T, seed bool) {
	t.Helper()

	database := testutil.NewTestDB(t)
	reg := registry.New(database)
	if seed {
		if err := reg.Seed(context.Background()); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	catalog = nil
	catalogOnce = sync.Once{}
	InitHandlers(reg)

	t.Cleanup(func() {
		catalog = nil
		catalogOnce = sync.Once{}
	})
}

func TestHandleList(t *testing.T) {
	setupFacilitiesTest(t, true)

	req := httptest.NewRequest(http.MethodGet, "/reservations/facilities", nil)
	recorder := httptest.NewRecorder()
	HandleList(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	if recorder.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("content type: %s", recorder.Header().Get("Content-Type"))
	}

	var facilities []db.Facility
	if err := json.Unmarshal(recorder.Body.Bytes(), &facilities); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(facilities) == 0 {
		t.Fatal("expected seeded facilities")
	}
	for i := 1; i < len(facilities); i++ {
		if facilities[i-1].Name > facilities[i].Name {
			t.Errorf("facilities not sorted: %q before %q", facilities[i-1].Name, facilities[i].Name)
		}
	}
}

func TestHandleListEmptyIsArray(t *testing.T) {
	setupFacilitiesTest(t, false)

	req := httptest.NewRequest(http.MethodGet, "/reservations/facilities", nil)
	recorder := httptest.NewRecorder()
	HandleList(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	if strings.TrimSpace(recorder.Body.String()) != "[]" {
		t.Errorf("body = %s, want []", recorder.Body.String())
	}
}
