package models

import (
	"strings"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

// Column is a canonical dataset column name.
type Column string

const (
	ColDate             Column = "Date"
	ColTime             Column = "Time"
	ColBookingID        Column = "Booking_ID"
	ColBookingStatus    Column = "Booking_Status"
	ColCustomerID       Column = "Customer_ID"
	ColVehicleType      Column = "Vehicle_Type"
	ColPickupLocation   Column = "Pickup_Location"
	ColDropLocation     Column = "Drop_Location"
	ColVTAT             Column = "V_TAT"
	ColCTAT             Column = "C_TAT"
	ColCustomerReason   Column = "Canceled_Rides_by_Customer"
	ColDriverReason     Column = "Canceled_Rides_by_Driver"
	ColIncomplete       Column = "Incomplete_Rides"
	ColIncompleteReason Column = "Incomplete_Rides_Reason"
	ColBookingValue     Column = "Booking_Value"
	ColPaymentMethod    Column = "Payment_Method"
	ColRideDistance     Column = "Ride_Distance"
	ColDriverRatings    Column = "Driver_Ratings"
	ColCustomerRating   Column = "Customer_Rating"
)

// AllColumns lists the canonical columns in dataset order.
var AllColumns = []Column{
	ColDate, ColTime, ColBookingID, ColBookingStatus, ColCustomerID, ColVehicleType,
	ColPickupLocation, ColDropLocation, ColVTAT, ColCTAT, ColCustomerReason, ColDriverReason,
	ColIncomplete, ColIncompleteReason, ColBookingValue, ColPaymentMethod, ColRideDistance,
	ColDriverRatings, ColCustomerRating,
}

// RequiredColumns must be present in every dataset.
var RequiredColumns = []Column{
	ColDate, ColBookingID, ColBookingStatus, ColCustomerID, ColVehicleType, ColPaymentMethod,
}

var columnLookup = func() map[string]Column {
	m := make(map[string]Column, len(AllColumns))
	for _, c := range AllColumns {
		m[strings.ToLower(string(c))] = c
	}
	return m
}()

// LookupColumn matches an already normalized header against the canonical names, ignoring case.
func LookupColumn(name string) (Column, bool) {
	c, ok := columnLookup[strings.ToLower(name)]
	return c, ok
}

// Booking is one ride request record. Optional values are nil when absent in the source.
type Booking struct {
	Date             time.Time           `json:"date"`
	Time             *string             `json:"time"`
	BookingID        string              `json:"booking_id"`
	Status           types.BookingStatus `json:"booking_status"`
	CustomerID       string              `json:"customer_id"`
	VehicleType      string              `json:"vehicle_type"`
	PickupLocation   *string             `json:"pickup_location"`
	DropLocation     *string             `json:"drop_location"`
	VTAT             *float64            `json:"v_tat"`
	CTAT             *float64            `json:"c_tat"`
	CustomerReason   *string             `json:"canceled_by_customer_reason"`
	DriverReason     *string             `json:"canceled_by_driver_reason"`
	Incomplete       *string             `json:"incomplete_rides"`
	IncompleteReason *string             `json:"incomplete_rides_reason"`
	BookingValue     *float64            `json:"booking_value"`
	PaymentMethod    string              `json:"payment_method"`
	RideDistance     *float64            `json:"ride_distance"`
	DriverRating     *float64            `json:"driver_ratings"`
	CustomerRating   *float64            `json:"customer_rating"`
}

func (b *Booking) IsSuccess() bool {
	return b.Status == types.StatusSuccess
}
