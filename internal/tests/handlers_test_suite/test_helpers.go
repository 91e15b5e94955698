package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/BlackSenju/techhive-automation/internal/activity"
	"github.com/BlackSenju/techhive-automation/internal/automation"
	api "github.com/BlackSenju/techhive-automation/internal/http"
	handler "github.com/BlackSenju/techhive-automation/internal/http/handlers"
	rl "github.com/BlackSenju/techhive-automation/internal/http/rate_limiter"
	"github.com/BlackSenju/techhive-automation/internal/models"
	"github.com/BlackSenju/techhive-automation/internal/worker"
)

type recordedUpdate struct {
	ID     int64
	Fields map[string]any
}

// fakeCatalog stands in for the remote store behind the handlers.
type fakeCatalog struct {
	mu           sync.Mutex
	unconfigured bool
	products     []models.Product
	listErr      error
	updateErr    map[int64]error
	updates      []recordedUpdate
}

func (f *fakeCatalog) Configured() bool { return !f.unconfigured }

func (f *fakeCatalog) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, errors.New("Not Found")
}

func (f *fakeCatalog) UpdateProduct(ctx context.Context, id int64, fields map[string]any) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.updateErr[id]; err != nil {
		return nil, err
	}
	f.updates = append(f.updates, recordedUpdate{ID: id, Fields: fields})
	return &models.Product{ID: id, Title: "Updated"}, nil
}

func (f *fakeCatalog) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

type testEnv struct {
	router  http.Handler
	catalog *fakeCatalog
	log     *activity.Log
	pool    *worker.Pool
	cancel  context.CancelFunc
}

// setup wires fresh fakes into the handler package and returns the router.
func setup(catalog *fakeCatalog) *testEnv {
	log := activity.NewLog()
	svc := automation.NewService(catalog, log)

	ctx, cancel := context.WithCancel(context.Background())
	pool := worker.NewPool(16)
	pool.Start(ctx)

	rl.CleanupAllVisitors()
	handler.SetCatalog(catalog)
	handler.SetActivityLog(log)
	handler.SetAutomationService(svc)
	handler.SetWorkerPool(pool)
	api.SetAdminSecret("")

	return &testEnv{
		router:  api.NewRouter(),
		catalog: catalog,
		log:     log,
		pool:    pool,
		cancel:  cancel,
	}
}

func (e *testEnv) teardown() {
	e.pool.Stop()
	e.cancel()
}

func (e *testEnv) do(method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var out T
	err := json.Unmarshal(w.Body.Bytes(), &out)
	return out, err
}
