package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/calliope/internal/api"
	"github.com/Decentr-net/calliope/internal/planner"
)

func (s server) getMonth(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /calendar/{year}/{month} Calendar GetMonth
	//
	// Returns whole weeks covering the month starting from Sunday.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: year
	//   in: path
	//   required: true
	//   type: integer
	//   example: 2026
	// - name: month
	//   in: path
	//   required: true
	//   type: integer
	//   minimum: 1
	//   maximum: 12
	// responses:
	//   '200':
	//     description: Month
	//     schema:
	//       "$ref": "#/definitions/CalendarMonthResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 || year > 9999 {
		api.WriteError(w, http.StatusBadRequest, "invalid year")
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		api.WriteError(w, http.StatusBadRequest, "invalid month")
		return
	}

	now := s.now().UTC()
	m := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	api.WriteOK(w, http.StatusOK, toCalendarMonthResponse(m, planner.MonthGrid(s.s.ListPosts(), m, now)))
}

func (s server) getDay(w http.ResponseWriter, r *http.Request) {
	day, err := time.ParseInLocation(dateLayout, chi.URLParam(r, "date"), time.UTC)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	api.WriteOK(w, http.StatusOK, toPosts(planner.PostsForDay(s.s.ListPosts(), day)))
}

func (s server) getUpcoming(w http.ResponseWriter, r *http.Request) {
	api.WriteOK(w, http.StatusOK, toPosts(planner.Upcoming(s.s.ListPosts(), s.now(), planner.UpcomingLimit)))
}
