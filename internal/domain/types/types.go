package types

type ServiceMode string

// Dashboard - serves the query menu, filtered dashboard and insights over HTTP and WebSocket
// Report - computes the full menu and the default dashboard once and publishes the results
// Stage - copies the dataset into the relational staging store
const (
	DashboardMode ServiceMode = "dashboard"
	ReportMode    ServiceMode = "report"
	StageMode     ServiceMode = "stage"
)

// Engine names the backend answering catalog queries
type Engine string

const (
	MemoryEngine Engine = "memory"
	SQLEngine    Engine = "sql"
)

func (e Engine) Valid() bool {
	return e == MemoryEngine || e == SQLEngine
}

// BookingStatus is the outcome of a booking. Values outside the known set are kept verbatim.
type BookingStatus string

const (
	StatusSuccess            BookingStatus = "Success"
	StatusCanceledByCustomer BookingStatus = "Canceled by Customer"
	StatusCanceledByDriver   BookingStatus = "Canceled by Driver"
	StatusDriverNotFound     BookingStatus = "Driver Not Found"
	StatusIncomplete         BookingStatus = "Incomplete"
)

func (s BookingStatus) String() string {
	return string(s)
}

// IsCancellation reports whether the booking was cancelled by one of the parties
func (s BookingStatus) IsCancellation() bool {
	return s == StatusCanceledByCustomer || s == StatusCanceledByDriver
}

// Well-known category values used by the canned queries
const (
	VehiclePrimeSedan = "Prime Sedan"
	PaymentUPI        = "UPI"
)

// Surface names where a dashboard was requested from
const (
	SurfaceHTTP      = "http"
	SurfaceWebSocket = "websocket"
	SurfaceReport    = "report"
)
