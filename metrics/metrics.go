package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	appointmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carehub360",
			Name:      "appointments_created_total",
			Help:      "Count of appointments created.",
		},
	)

	slotsBooked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carehub360",
			Name:      "slots_booked_total",
			Help:      "Count of time slots marked booked.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carehub360",
			Name:      "booking_conflicts_total",
			Help:      "Count of bookings rejected because the slot was taken.",
		},
	)

	statusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carehub360",
			Name:      "appointment_status_updates_total",
			Help:      "Count of appointment status updates by target status.",
		},
		[]string{"status"},
	)

	reportsUploaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carehub360",
			Name:      "reports_uploaded_total",
			Help:      "Count of medical reports uploaded.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(appointmentsCreated, slotsBooked, bookingConflicts, statusUpdates, reportsUploaded)
	})
}

func IncAppointmentsCreated() { appointmentsCreated.Inc() }

func IncSlotsBooked() { slotsBooked.Inc() }

func IncBookingConflicts() { bookingConflicts.Inc() }

func IncStatusUpdate(status string) { statusUpdates.WithLabelValues(status).Inc() }

func IncReportsUploaded() { reportsUploaded.Inc() }
