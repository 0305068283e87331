package server

import (
	"net/http"

	"github.com/Decentr-net/calliope/internal/analytics"
	"github.com/Decentr-net/calliope/internal/api"
)

func (s server) getDailyAnalytics(w http.ResponseWriter, _ *http.Request) {
	// swagger:operation GET /analytics/daily Analytics GetDailyAnalytics
	//
	// Returns synthetic analytics of the last 30 days. Values are regenerated on every request.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Daily analytics
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/AnalyticsData"

	api.WriteOK(w, http.StatusOK, toAnalyticsData(analytics.AnalyticsData()))
}

func (s server) getPlatformStats(w http.ResponseWriter, _ *http.Request) {
	api.WriteOK(w, http.StatusOK, toPlatformStats(analytics.PlatformStats()))
}

func (s server) getContentTypeStats(w http.ResponseWriter, _ *http.Request) {
	api.WriteOK(w, http.StatusOK, toContentTypeStats(analytics.ContentTypeStats()))
}

func (s server) getKPI(w http.ResponseWriter, _ *http.Request) {
	api.WriteOK(w, http.StatusOK, toKPIData(analytics.KPIData()))
}

func (s server) getColors(w http.ResponseWriter, _ *http.Request) {
	api.WriteOK(w, http.StatusOK, toColorsResponse())
}
