package types

import (
	"encoding/json"
	"fmt"
)

// QueryKind identifies one computation of the aggregation catalog.
type QueryKind uint8

const (
	QueryUnknown QueryKind = iota

	// query menu
	QuerySuccessfulBookings
	QueryAvgDistanceByVehicle
	QueryCustomerCancellations
	QueryTopCustomers
	QueryDriverPersonalCarCancellations
	QueryPrimeSedanDriverRatings
	QueryUPIBookings
	QueryAvgCustomerRatingByVehicle
	QuerySuccessRevenue
	QueryCancellationReasons

	// dashboard panels
	QueryRidesPerDay
	QueryDistancePerDay
	QueryTopVehiclesByDistance
	QueryTopCustomersByValue
	QueryRevenueByPayment
	QueryCancellationDistribution
	QueryStatusBreakdown
	QueryPaymentMethodCounts
	QueryDriverRatingDistribution
	QueryRatingScatter

	queryKindEnd
)

type queryInfo struct {
	slug  string
	title string
}

var queryInfos = [queryKindEnd]queryInfo{
	QueryUnknown:                        {"unknown", "Unknown"},
	QuerySuccessfulBookings:             {"successful_bookings", "Retrieve all successful bookings"},
	QueryAvgDistanceByVehicle:           {"avg_distance_by_vehicle", "Find the average ride distance for each vehicle type"},
	QueryCustomerCancellations:          {"customer_cancellations", "Total Cancelled Rides by Customers"},
	QueryTopCustomers:                   {"top_customers", "Top 5 Customers"},
	QueryDriverPersonalCarCancellations: {"driver_personal_car_cancellations", "Driver Cancellations due to Personal and Car Issues"},
	QueryPrimeSedanDriverRatings:        {"prime_sedan_driver_ratings", "Maximum and Minimum Driver Ratings for Prime Sedan Bookings"},
	QueryUPIBookings:                    {"upi_bookings", "Rides Paid Using UPI"},
	QueryAvgCustomerRatingByVehicle:     {"avg_customer_rating_by_vehicle", "Average Customer Rating per Vehicle Type"},
	QuerySuccessRevenue:                 {"success_revenue", "Total Booking Value of Successfully Completed Rides"},
	QueryCancellationReasons:            {"cancellation_reasons", "Incomplete Rides with Cancellation Reason"},
	QueryRidesPerDay:                    {"rides_per_day", "Ride Volume Over Time"},
	QueryDistancePerDay:                 {"distance_per_day", "Ride Distance Per Day"},
	QueryTopVehiclesByDistance:          {"top_vehicles_by_distance", "Top 5 Vehicle Types by Ride Distance"},
	QueryTopCustomersByValue:            {"top_customers_by_value", "Top 5 Customers by Booking Value"},
	QueryRevenueByPayment:               {"revenue_by_payment", "Revenue by Payment Method"},
	QueryCancellationDistribution:       {"cancellation_distribution", "Cancellation Distribution"},
	QueryStatusBreakdown:                {"status_breakdown", "Booking Status Breakdown"},
	QueryPaymentMethodCounts:            {"payment_method_counts", "Payment Method Share"},
	QueryDriverRatingDistribution:       {"driver_rating_distribution", "Driver Ratings Distribution"},
	QueryRatingScatter:                  {"rating_scatter", "Customer vs Driver Ratings"},
}

var querySlugs = func() map[string]QueryKind {
	m := make(map[string]QueryKind, len(queryInfos))
	for k := QueryUnknown + 1; k < queryKindEnd; k++ {
		m[queryInfos[k].slug] = k
	}
	return m
}()

// ParseQueryKind maps a slug from the selection surface to its kind.
func ParseQueryKind(slug string) (QueryKind, error) {
	if k, ok := querySlugs[slug]; ok {
		return k, nil
	}
	return QueryUnknown, fmt.Errorf("%w: %q", ErrUnknownQuery, slug)
}

// AllQueries lists every catalog computation in declaration order.
func AllQueries() []QueryKind {
	out := make([]QueryKind, 0, int(queryKindEnd)-1)
	for k := QueryUnknown + 1; k < queryKindEnd; k++ {
		out = append(out, k)
	}
	return out
}

// MenuQueries lists the canned queries offered on the selection menu.
func MenuQueries() []QueryKind {
	out := make([]QueryKind, 0, int(QueryCancellationReasons))
	for k := QuerySuccessfulBookings; k <= QueryCancellationReasons; k++ {
		out = append(out, k)
	}
	return out
}

func (k QueryKind) Valid() bool {
	return k > QueryUnknown && k < queryKindEnd
}

// InMenu reports whether the query is part of the selection menu.
func (k QueryKind) InMenu() bool {
	return k >= QuerySuccessfulBookings && k <= QueryCancellationReasons
}

func (k QueryKind) String() string {
	if k >= queryKindEnd {
		return queryInfos[QueryUnknown].slug
	}
	return queryInfos[k].slug
}

func (k QueryKind) Title() string {
	if k >= queryKindEnd {
		return queryInfos[QueryUnknown].title
	}
	return queryInfos[k].title
}

func (k QueryKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *QueryKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseQueryKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
