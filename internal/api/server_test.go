package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/meowcal/internal/repo"
	"github.com/nikmy/meowcal/internal/repo/models"
	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/logger"
)

var testNow = time.Date(2030, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*server, repo.SelectionsRepo) {
	t.Helper()

	ctx := context.Background()
	selections, err := repo.New(ctx, logger.NewStub(), repo.Config{
		Driver: repo.DriverSQLite,
		SQLite: repo.SQLiteConfig{Path: filepath.Join(t.TempDir(), "api.db")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = selections.Close(ctx) })

	var cfg Config
	cfg.DefaultLocale = "en"

	return newServer(cfg, logger.NewStub(), selections, func() time.Time { return testNow }), selections
}

func doGet(t *testing.T, s *server, target string, header map[string]string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := s.http.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestServer_Grid(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := doGet(t, s, "/grid?from=2020&to=2025", nil)
	require.Equal(t, http.StatusOK, code)

	var got gridView
	require.NoError(t, json.Unmarshal(body, &got))

	// 2030 is outside the interval, so the grid starts at its first month
	require.Equal(t, 2020, got.Year)
	require.Equal(t, 0, got.Month)
	require.Equal(t, "January", got.MonthName)
	require.Equal(t, calendar.Interval{Min: 2020, Max: 2025}, got.Interval)
	require.Equal(t, calendar.Navigation{PrevDisabled: true}, got.Navigation)
	require.Equal(t, "Su", got.Weekdays[0])
}

func TestServer_GridMonth(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := doGet(t, s, "/grid?from=2025&year=2025&month=0", nil)
	require.Equal(t, http.StatusOK, code)

	var got gridView
	require.NoError(t, json.Unmarshal(body, &got))

	require.Len(t, got.Weeks, 5)
	first := got.Weeks[0]
	for i := 0; i < 3; i++ {
		require.True(t, first[i].Blank)
	}
	require.Equal(t, 1, first[3].Day)
	require.Equal(t, "We", first[3].Weekday)
}

func TestServer_GridLocale(t *testing.T) {
	s, _ := newTestServer(t)

	_, body := doGet(t, s, "/grid", map[string]string{"Accept-Language": "ru-RU,ru;q=0.9"})

	var got gridView
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "ru", got.Locale)
	require.Equal(t, "Июнь", got.MonthName)
	require.Equal(t, "По", got.Weekdays[0])

	var today int
	for _, week := range got.Weeks {
		for _, cell := range week {
			if cell.Today {
				today = cell.Day
			}
		}
	}
	require.Equal(t, 15, today)
}

func TestServer_GridBadQuery(t *testing.T) {
	s, _ := newTestServer(t)

	for _, target := range []string{
		"/grid?from=soon",
		"/grid?from=-5",
		"/grid?from=2020&to=99999999999",
		"/grid?to=10000",
		"/grid?from=0",
	} {
		code, body := doGet(t, s, target, nil)
		require.Equal(t, http.StatusBadRequest, code, target)
		require.Contains(t, string(body), `"status":"ERROR"`, target)
	}

	code, _ := doGet(t, s, "/grid?from=1&to=9999", nil)
	require.Equal(t, http.StatusOK, code)
}

func TestServer_Selections(t *testing.T) {
	s, selections := newTestServer(t)

	ctx := context.Background()
	require.NoError(t, selections.Save(ctx, models.Selection{
		UserID:   42,
		WidgetID: "main",
		Date:     calendar.Date{Year: 2024, Month: 1, Day: 29},
		PickedAt: testNow,
	}))

	code, body := doGet(t, s, "/selections/42?year=2024", nil)
	require.Equal(t, http.StatusOK, code)

	var got []selectionView
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, []selectionView{{Date: "2024-02-29", Widget: "main", PickedAt: testNow.UnixMilli()}}, got)

	code, _ = doGet(t, s, "/selections/nobody", nil)
	require.Equal(t, http.StatusBadRequest, code)

	code, body = doGet(t, s, "/selections/43", nil)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `[]`, string(body))
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := doGet(t, s, "/healthz", nil)
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `{"status":"OK"}`, string(body))
}
