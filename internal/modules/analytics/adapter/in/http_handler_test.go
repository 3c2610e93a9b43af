package in_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	analyticsin "focusflow/internal/modules/analytics/adapter/in"
	"focusflow/internal/modules/analytics/dto"
	"focusflow/internal/platform/httpx"
)

type fakeUsecase struct{ userID string }

func (f *fakeUsecase) GetAnalytics(_ context.Context, userID string) (dto.Bundle, error) {
	f.userID = userID
	b := dto.Bundle{}
	b.TotalPomodoros.Total = 4
	b.ProductivityPatterns.HourlyDistribution[10] = 4
	b.ProductivityPatterns.MostProductiveHour = 10
	return b, nil
}

func TestAnalyticsRouteServesBundle(t *testing.T) {
	t.Parallel()
	uc := &fakeUsecase{}
	mux := http.NewServeMux()
	analyticsin.NewHTTPHandler(uc).Register(mux, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(httpx.WithUserID(r.Context(), "u7")))
		})
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session/analytics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if uc.userID != "u7" {
		t.Fatalf("expected caller id to reach usecase, got %q", uc.userID)
	}
	body := struct {
		TotalPomodoros struct {
			Total int `json:"total"`
		} `json:"totalPomodoros"`
		ProductivityPatterns struct {
			HourlyDistribution []int `json:"hourlyDistribution"`
		} `json:"productivityPatterns"`
	}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.ProductivityPatterns.HourlyDistribution) != 24 || body.ProductivityPatterns.HourlyDistribution[10] != 4 {
		t.Fatalf("expected 24 hourly buckets, got %v", body.ProductivityPatterns.HourlyDistribution)
	}
	if body.TotalPomodoros.Total != 4 {
		t.Fatalf("unexpected total %d", body.TotalPomodoros.Total)
	}
}
