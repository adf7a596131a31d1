package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// defaultProgramLimit caps the catalog listing endpoint.
const defaultProgramLimit = 50

// defaultSubjectLimit caps the subject search endpoint.
const defaultSubjectLimit = 20

// Server exposes the chatbot over HTTP: the question endpoint plus a
// small read-only catalog API.
type Server struct {
	server *http.Server
	router chi.Router

	Addr string

	Asker    posgrados.Asker
	Programs posgrados.ProgramService
	Subjects posgrados.SubjectService
	Logs     posgrados.QueryLogService
	Cache    posgrados.ContextCache

	// CredentialConfigured reports whether an LLM credential was
	// provided at startup; surfaced through /health.
	CredentialConfigured bool
}

// NewServer creates a new Server and registers its routes.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.Recoverer)

	s.router.Post("/q", s.handleQuestion)
	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/programas", s.handleListPrograms)
		r.Get("/programas/{key}", s.handleProgram)
		r.Post("/buscar", s.handleSearchPrograms)
		r.Get("/materias", s.handleSearchSubjects)
		r.Get("/estadisticas", s.handleStats)
	})

	s.server.Handler = s.router

	return s
}

// ServeHTTP implements http.Handler by delegating to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open begins listening on the configured address.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	go s.server.Serve(ln)
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pregunta string `json:"pregunta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo debe ser JSON con el campo 'pregunta'.")
		return
	}

	answer, err := s.Asker.Ask(r.Context(), req.Pregunta)
	if err != nil {
		switch posgrados.ErrorCode(err) {
		case posgrados.EINVALID:
			writeError(w, http.StatusBadRequest, posgrados.ErrorMessage(err))
		default:
			writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"respuesta":            answer.Text,
		"programa_relacionado": answer.MatchedProgram,
		"tiempo_ms":            answer.LatencyMS,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":                 "ok",
		"credencial_configurada": s.CredentialConfigured,
	}
	if s.Programs != nil {
		if _, n, err := s.Programs.FindPrograms(r.Context(), posgrados.ProgramFilter{Limit: 1}); err == nil {
			resp["total_programas"] = n
		}
	}
	if s.Cache != nil {
		resp["cache_antiguedad_s"] = int(s.Cache.Age().Seconds())
		resp["cache_caracteres"] = s.Cache.Size()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	filter := posgrados.ProgramFilter{}

	if tipo := r.URL.Query().Get("tipo"); tipo != "" {
		c := posgrados.Category(tipo)
		filter.Category = &c
	}

	limit := defaultProgramLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "El parámetro 'limit' debe ser un entero positivo.")
			return
		}
		limit = n
	}
	filter.Limit = limit

	programs, n, err := s.Programs.FindPrograms(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	items := make([]map[string]any, 0, len(programs))
	for _, p := range programs {
		items = append(items, map[string]any{
			"clave":    p.Key,
			"tipo":     string(p.Category),
			"nombre":   p.Name,
			"director": p.Director,
			"email":    p.Email,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"programas": items,
		"total":     n,
	})
}

func (s *Server) handleSearchPrograms(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query     string `json:"query"`
		Tipo      string `json:"tipo"`
		Modalidad string `json:"modalidad"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo debe ser JSON con el campo 'query'.")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "El campo 'query' es requerido.")
		return
	}

	filter := posgrados.ProgramFilter{Query: &req.Query}
	if req.Tipo != "" {
		c := posgrados.Category(req.Tipo)
		filter.Category = &c
	}
	if req.Modalidad != "" {
		m := posgrados.Modality(req.Modalidad)
		filter.Modality = &m
	}

	programs, n, err := s.Programs.FindPrograms(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	items := make([]map[string]any, 0, len(programs))
	for _, p := range programs {
		items = append(items, map[string]any{
			"clave":    p.Key,
			"tipo":     string(p.Category),
			"nombre":   p.Name,
			"director": p.Director,
			"email":    p.Email,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"programas": items,
		"total":     n,
	})
}

func (s *Server) handleSearchSubjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "El parámetro 'q' es requerido.")
		return
	}

	limit := defaultSubjectLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "El parámetro 'limit' debe ser un entero positivo.")
			return
		}
		limit = n
	}

	subjects, n, err := s.Subjects.FindSubjects(r.Context(), posgrados.SubjectFilter{
		Query: &q,
		Limit: limit,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	// Resolve owning program names in one pass over the catalog.
	programs, _, err := s.Programs.FindPrograms(r.Context(), posgrados.ProgramFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	names := make(map[string]string, len(programs))
	for _, p := range programs {
		names[p.Key] = p.Name
	}

	items := make([]map[string]any, 0, len(subjects))
	for _, sub := range subjects {
		items = append(items, map[string]any{
			"nombre":   sub.Name,
			"programa": names[sub.ProgramKey],
			"tipo":     string(sub.Kind),
			"horas":    sub.Hours,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"materias": items,
		"total":    n,
	})
}

func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	program, err := s.Programs.FindProgramByKey(r.Context(), key)
	if err != nil {
		switch posgrados.ErrorCode(err) {
		case posgrados.ENOTFOUND:
			writeError(w, http.StatusNotFound, "Programa no encontrado.")
		default:
			writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	subjects, err := s.Subjects.FindSubjectsByProgram(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	materias := make([]map[string]any, 0, len(subjects))
	for _, sub := range subjects {
		materias = append(materias, map[string]any{
			"nombre": sub.Name,
			"tipo":   string(sub.Kind),
			"area":   sub.Area,
			"horas":  sub.Hours,
			"ciclo":  sub.Cycle,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"programa":       program,
		"materias":       materias,
		"total_materias": len(materias),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Logs.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	top, err := s.Logs.TopPrograms(r.Context(), 5)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	consultados := make([]map[string]any, 0, len(top))
	for _, pc := range top {
		consultados = append(consultados, map[string]any{
			"programa":  pc.Program,
			"consultas": pc.Count,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_programas":           stats.Programs,
		"maestrias":                 stats.Maestrias,
		"especializaciones":         stats.Especializaciones,
		"total_materias":            stats.Subjects,
		"total_consultas":           stats.Queries,
		"programas_mas_consultados": consultados,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
