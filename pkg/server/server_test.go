package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/image-api/pkg/domain"
	"github.com/dskvich/image-api/pkg/poller"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeDescriber struct {
	text string
	err  error
}

func (f *fakeDescriber) DescribeImage(context.Context, string) (string, error) {
	return f.text, f.err
}

type fakeGenerator struct {
	id        string
	createErr error

	statuses []domain.JobStatus
	output   string
	queries  int
}

func (f *fakeGenerator) CreatePrediction(context.Context, string, string) (string, error) {
	return f.id, f.createErr
}

func (f *fakeGenerator) GetPrediction(context.Context, string) (domain.JobStatus, string, error) {
	status := f.statuses[min(f.queries, len(f.statuses)-1)]
	f.queries++
	if status.Succeeded() {
		return status, f.output, nil
	}
	return status, "", nil
}

type fakeHistory struct {
	records []domain.HistoryRecord
	saveErr error
	listErr error
}

func (f *fakeHistory) Save(_ context.Context, rec *domain.HistoryRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeHistory) List(context.Context, int) ([]domain.HistoryRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(context.Context) error {
	return f.err
}

func newTestRouter(t *testing.T, describer imageDescriber, generator imageGenerator, history historyRepository, db databasePinger) *gin.Engine {
	t.Helper()
	cfg := Config{
		ImagePrefixLen: domain.DefaultImagePrefixLen,
		Poller:         poller.Poller{Interval: time.Millisecond, MaxAttempts: 30},
	}
	return NewRouter(cfg, describer, generator, history, db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}
