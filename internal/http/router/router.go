package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"delivery-dispatch/internal/http/handlers"
	appmw "delivery-dispatch/internal/http/middleware"
	"delivery-dispatch/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// locationLimit guards the high-frequency location ping route; pass nil to
// serve it unthrottled.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	dispatch *handlers.DispatchHandler,
	trk *handlers.TrackerHandler,
	locationLimit func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(appmw.Observability(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/deliveries", func(r chi.Router) {
		r.Get("/available", dispatch.AvailableJobs)
		r.Post("/{deliveryID}/claim", dispatch.Claim)
		r.Post("/{deliveryID}/advance", dispatch.Advance)
		r.Get("/{deliveryID}/rider-location", trk.RiderLocation)
	})

	r.Route("/riders", func(r chi.Router) {
		r.Get("/{riderID}/current-job", dispatch.CurrentJob)
		r.Post("/{riderID}/reconcile", dispatch.Reconcile)

		if locationLimit != nil {
			r.With(locationLimit).Post("/{riderID}/location", trk.RecordLocation)
		} else {
			r.Post("/{riderID}/location", trk.RecordLocation)
		}
	})

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
