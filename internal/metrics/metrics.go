package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder captures run metrics on a private prometheus registry. The
// generator runs once and exits, so nothing is exposed over HTTP; the
// registry is gathered at the end of the run for a summary log line.
type Recorder struct {
	registry *prometheus.Registry

	providerRequests *prometheus.CounterVec
	providerErrors   *prometheus.CounterVec
	pagesFetched     *prometheus.CounterVec
	gamesNormalized  prometheus.Counter
	recordsSkipped   prometheus.Counter
	eventsRendered   prometheus.Counter
	calendarsWritten prometheus.Counter
}

// NewRecorder constructs a Recorder with all instruments registered.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.providerRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "btsh_provider_requests_total",
		Help: "Upstream fetches attempted, by endpoint.",
	}, []string{"endpoint"})
	r.providerErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "btsh_provider_errors_total",
		Help: "Upstream fetches that failed, by endpoint.",
	}, []string{"endpoint"})
	r.pagesFetched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "btsh_provider_pages_total",
		Help: "Result pages consumed, by endpoint.",
	}, []string{"endpoint"})
	r.gamesNormalized = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "btsh_games_normalized_total",
		Help: "Games successfully normalized from the game days feed.",
	})
	r.recordsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "btsh_records_skipped_total",
		Help: "Malformed upstream records skipped during normalization.",
	})
	r.eventsRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "btsh_events_rendered_total",
		Help: "Calendar events rendered across all documents.",
	})
	r.calendarsWritten = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "btsh_calendars_written_total",
		Help: "Calendar files written (rewrites of identical content excluded).",
	})

	r.registry.MustRegister(
		r.providerRequests,
		r.providerErrors,
		r.pagesFetched,
		r.gamesNormalized,
		r.recordsSkipped,
		r.eventsRendered,
		r.calendarsWritten,
	)
	return r
}

// RecordRequest counts one upstream fetch attempt and its outcome.
func (r *Recorder) RecordRequest(endpoint string, err error) {
	if r == nil {
		return
	}
	r.providerRequests.WithLabelValues(endpoint).Inc()
	if err != nil {
		r.providerErrors.WithLabelValues(endpoint).Inc()
	}
}

// RecordPage counts one result page consumed from an endpoint.
func (r *Recorder) RecordPage(endpoint string) {
	if r == nil {
		return
	}
	r.pagesFetched.WithLabelValues(endpoint).Inc()
}

// AddGamesNormalized counts games that made it through normalization.
func (r *Recorder) AddGamesNormalized(n int) {
	if r == nil {
		return
	}
	r.gamesNormalized.Add(float64(n))
}

// RecordSkippedRecord counts one malformed upstream record.
func (r *Recorder) RecordSkippedRecord() {
	if r == nil {
		return
	}
	r.recordsSkipped.Inc()
}

// AddEventsRendered counts rendered calendar events.
func (r *Recorder) AddEventsRendered(n int) {
	if r == nil {
		return
	}
	r.eventsRendered.Add(float64(n))
}

// RecordCalendarWritten counts one calendar file written to disk.
func (r *Recorder) RecordCalendarWritten() {
	if r == nil {
		return
	}
	r.calendarsWritten.Inc()
}

// Snapshot aggregates the current counter values.
type Snapshot struct {
	Requests         int
	Errors           int
	Pages            int
	GamesNormalized  int
	RecordsSkipped   int
	EventsRendered   int
	CalendarsWritten int
}

// Snapshot gathers the registry and sums each family across label values.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	families, err := r.registry.Gather()
	if err != nil {
		return Snapshot{}
	}

	var snap Snapshot
	for _, fam := range families {
		total := 0
		for _, m := range fam.GetMetric() {
			total += int(m.GetCounter().GetValue())
		}
		switch fam.GetName() {
		case "btsh_provider_requests_total":
			snap.Requests = total
		case "btsh_provider_errors_total":
			snap.Errors = total
		case "btsh_provider_pages_total":
			snap.Pages = total
		case "btsh_games_normalized_total":
			snap.GamesNormalized = total
		case "btsh_records_skipped_total":
			snap.RecordsSkipped = total
		case "btsh_events_rendered_total":
			snap.EventsRendered = total
		case "btsh_calendars_written_total":
			snap.CalendarsWritten = total
		}
	}
	return snap
}
