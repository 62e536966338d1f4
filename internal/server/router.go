package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	ordercontroller "voltline/internal/order/controller"
	productcontroller "voltline/internal/product/controller"
)

func NewRouter(orderCtrl *ordercontroller.Controller, productCtrl *productcontroller.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orderCtrl.HandleList)
		r.Post("/", orderCtrl.HandleCreate)
		r.Get("/stats", orderCtrl.HandleStats)
		r.Get("/number/{orderNumber}", orderCtrl.HandleGetByNumber)
		r.Get("/{id}", orderCtrl.HandleGet)
		r.Put("/{id}", orderCtrl.HandleUpdate)
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/search", productCtrl.HandleSearchProducts)
		r.Get("/{id}", productCtrl.HandleGetProduct)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
