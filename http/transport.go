package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-kit/log"
	"go-balance-rates/domain"
	"go-balance-rates/exchange"
	"go-balance-rates/page"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"
)

// Options tune the HTTP Server
type Options struct {
	// MaxBodyBytes caps request bodies, 0 means no limit
	MaxBodyBytes int64
	// AllowedOrigins for browser callers
	AllowedOrigins []string
}

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	logger  log.Logger
	options Options
	router  chi.Router
}

func NewServer(s exchange.Service, logger log.Logger, options Options) *Server {
	server := &Server{
		Service: s,
		logger:  logger,
		options: options,
		router:  chi.NewRouter(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.options.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Augment-Cards", "X-Augment-Rows"},
		MaxAge:         300,
	}))

	s.router.Get("/health", s.health())
	s.router.Post("/api/convert", s.convert())
	s.router.Post("/api/augment", s.augment())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// logRequests logs every request once it has been served
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		defer func(begin time.Time) {
			s.logger.Log(
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
				"took", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}

func (s *Server) body(rw http.ResponseWriter, r *http.Request) io.Reader {
	if s.options.MaxBodyBytes > 0 {
		return http.MaxBytesReader(rw, r.Body, s.options.MaxBodyBytes)
	}
	return r.Body
}

func (s *Server) health() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		rw.Write([]byte("OK"))
	}
}

// convert produces HTTP handler converting a single balance
func (s *Server) convert() http.HandlerFunc {

	type rate struct {
		Currency domain.Currency `json:"currency"`
		Buy      string          `json:"buy"`
		Cell     string          `json:"cell"`
	}

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		Currency domain.Currency `json:"currency"`
		Balance  string          `json:"balance"`
		Rates    []rate          `json:"rates"`
	}

	type conversion struct {
		Currency domain.Currency `json:"currency"`
		// Amount is null when the balance could not be read
		Amount *float64 `json:"amount"`
		Text   string   `json:"text"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Conversions []conversion `json:"conversions"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		bytes, err := io.ReadAll(s.body(rw, r))
		if err != nil {
			rw.WriteHeader(statusOf(err))
			rw.Write([]byte(`{"error": "invalid request"}`))
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			rw.Write([]byte(`{"error": "invalid json"}`))
			return
		}

		quotes := make([]domain.RateQuote, 0, len(request.Rates))
		for _, q := range request.Rates {
			quotes = append(quotes, domain.RateQuote{Currency: q.Currency, Buy: q.Buy, Cell: q.Cell})
		}

		conversions, err := s.Service.Convert(r.Context(), request.Currency, request.Balance, exchange.ParseRates(quotes))
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			rw.Write([]byte(`{"error": "failed conversion"}`))
			return
		}

		response := response{Conversions: make([]conversion, 0, len(conversions))}
		for _, c := range conversions {
			out := conversion{Currency: c.Currency, Text: c.Text}
			if !math.IsNaN(c.Amount) && !math.IsInf(c.Amount, 0) {
				amount := c.Amount
				out.Amount = &amount
			}
			response.Conversions = append(response.Conversions, out)
		}

		enc := json.NewEncoder(rw)
		err = enc.Encode(&response)
		if err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			rw.Write([]byte(`{"error": "failed json encoding"}`))
			return
		}
	}
}

// augment produces HTTP handler adding conversion rows to a posted page
func (s *Server) augment() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var out bytes.Buffer
		summary, err := s.Service.Augment(r.Context(), s.body(rw, r), &out)
		if err != nil {
			rw.Header().Set("Content-Type", "application/json")
			rw.WriteHeader(statusOf(err))
			json.NewEncoder(rw).Encode(map[string]string{"error": err.Error()})
			return
		}

		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		rw.Header().Set("X-Augment-Cards", strconv.Itoa(summary.Cards))
		rw.Header().Set("X-Augment-Rows", strconv.Itoa(summary.Rows))
		rw.WriteHeader(http.StatusOK)
		rw.Write(out.Bytes())
	}
}

// statusOf maps a failed pass to a response status
func statusOf(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, page.ErrNoRateTable),
		errors.Is(err, page.ErrRateTableShape),
		errors.Is(err, page.ErrNoProducts),
		errors.Is(err, page.ErrCardShape):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
