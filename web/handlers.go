/* handlers.go
 * Contains the HTTP handlers and router for the dashboard JSON API. Kept separate from the
 * blocking Start function so the routes can be exercised with httptest
 */

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"cf-faceoff/api/api"
	"cf-faceoff/api/external"
	"cf-faceoff/api/logic"
	"cf-faceoff/api/store"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewServer creates a Server bound to the given API instance
func NewServer(apiPtr *api.API) *Server {
	return &Server{api: apiPtr}
}

// Routes builds the chi router for the JSON API
// Preconditions: Server has been created with a non nil API
// Postconditions: Returns an http.Handler with all endpoints registered
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Get("/api/user/{handle}/stats", s.UserStatsHandler)
	r.Get("/api/compare", s.CompareHandler)
	r.Post("/visitors/log", s.VisitLogHandler)
	r.Get("/visitors/stats", s.VisitorStatsHandler)

	return r
}

// UserStatsHandler serves GET /api/user/{handle}/stats. The visit is logged
// fire and forget before the upstream fetches start. An optional ?tag= query
// fuzzy matches against the user's solved tags and reports the count.
// Preconditions: Receives HTTP ResponseWriter and Request with a handle path parameter
// Postconditions: Writes the UserStats JSON, 404 for an unknown handle, 502 for an upstream
// failure or 500 otherwise
func (s *Server) UserStatsHandler(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	if handle == "" {
		writeError(w, http.StatusBadRequest, "handle is required")
		return
	}

	s.api.LogVisit(store.ActionSearch, []string{handle}, r.URL.Path, clientIP(r), r.UserAgent())

	stats, err := s.api.GetUserStats(r.Context(), handle)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	response := statsResponse{UserStats: stats}
	if query := r.URL.Query().Get("tag"); query != "" {
		tags := make([]string, 0, len(stats.Stats.ProblemsByTags))
		for tag := range stats.Stats.ProblemsByTags {
			tags = append(tags, tag)
		}
		if tag, ok := logic.MatchTag(query, tags); ok {
			response.TagMatch = &tagMatch{
				Query: query,
				Tag:   tag,
				Count: stats.Stats.ProblemsByTags[tag],
			}
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// CompareHandler serves GET /api/compare?handle1=&handle2=
// Preconditions: Receives HTTP ResponseWriter and Request with both handle query parameters
// Postconditions: Writes the merged Comparison JSON or an error status
func (s *Server) CompareHandler(w http.ResponseWriter, r *http.Request) {
	handle1 := r.URL.Query().Get("handle1")
	handle2 := r.URL.Query().Get("handle2")
	if handle1 == "" || handle2 == "" {
		writeError(w, http.StatusBadRequest, "handle1 and handle2 are required")
		return
	}
	if handle1 == handle2 {
		writeError(w, http.StatusBadRequest, "handles must be different")
		return
	}

	s.api.LogVisit(store.ActionCompare, []string{handle1, handle2}, r.URL.Path, clientIP(r), r.UserAgent())

	comparison, err := s.api.CompareProfiles(r.Context(), handle1, handle2)
	if err != nil {
		writeFetchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comparison)
}

// VisitLogHandler serves POST /visitors/log. Storage failures are swallowed
// by the API layer, so the endpoint only rejects malformed requests.
// Preconditions: Receives HTTP ResponseWriter and a Request with a JSON Visit body
// Postconditions: Responds 202 once the visit has been handed to the store
func (s *Server) VisitLogHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var visit store.Visit
	if err := json.NewDecoder(r.Body).Decode(&visit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid visit payload")
		return
	}
	if visit.Action != store.ActionSearch && visit.Action != store.ActionCompare {
		writeError(w, http.StatusBadRequest, "action must be SEARCH or COMPARE")
		return
	}

	if visit.IPAddress == "" {
		visit.IPAddress = clientIP(r)
	}
	if visit.UserAgent == "" {
		visit.UserAgent = r.UserAgent()
	}

	s.api.LogVisit(visit.Action, visit.Handles, visit.Path, visit.IPAddress, visit.UserAgent)
	w.WriteHeader(http.StatusAccepted)
}

// VisitorStatsHandler serves GET /visitors/stats
// Preconditions: Receives HTTP ResponseWriter and Request
// Postconditions: Writes the VisitorStats JSON or a 500 if the store query fails
func (s *Server) VisitorStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.api.VisitorStats()
	if err != nil {
		log.Println("failed to get visitor stats:", err)
		writeError(w, http.StatusInternalServerError, "failed to get visitor stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// writeFetchError maps the upstream error taxonomy onto HTTP statuses
func writeFetchError(w http.ResponseWriter, err error) {
	var upstream *external.UpstreamError
	switch {
	case api.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &upstream):
		writeError(w, http.StatusBadGateway, upstream.Error())
	default:
		log.Println("fetch failed:", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch user data")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("failed to encode response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// clientIP strips the port from the remote address; chi's RealIP middleware
// has already substituted any forwarding headers
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
