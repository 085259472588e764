package models

import (
	"encoding/json"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

// ResultKind tells which payload of a QueryResult is populated.
type ResultKind string

const (
	KindScalar        ResultKind = "scalar"
	KindGroups        ResultKind = "groups"
	KindRecords       ResultKind = "records"
	KindCancellations ResultKind = "cancellations"
	KindRange         ResultKind = "range"
	KindSeries        ResultKind = "series"
	KindSplit         ResultKind = "split"
	KindPoints        ResultKind = "points"
)

// ChartKind is a rendering hint for the presentation layer.
type ChartKind string

const (
	ChartIndicator     ChartKind = "indicator"
	ChartBar           ChartKind = "bar"
	ChartHorizontalBar ChartKind = "hbar"
	ChartGroupedBar    ChartKind = "grouped_bar"
	ChartPie           ChartKind = "pie"
	ChartLine          ChartKind = "line"
	ChartHistogram     ChartKind = "histogram"
	ChartScatter       ChartKind = "scatter"
	ChartTable         ChartKind = "table"
)

type Scalar struct {
	Value float64 `json:"value"`
}

// GroupStat is one row of a grouped aggregate. Value is nil when the
// group's measure had no defined values.
type GroupStat struct {
	Key   string   `json:"key"`
	Count int      `json:"count"`
	Value *float64 `json:"value"`
}

type RatingRange struct {
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Count int      `json:"count"`
}

// CancellationRecord is a non-successful booking annotated with its cancellation reason.
type CancellationRecord struct {
	BookingID string              `json:"booking_id"`
	Status    types.BookingStatus `json:"booking_status"`
	Reason    *string             `json:"cancellation_reason"`
}

type DailyStat struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type CancellationSplit struct {
	Customer int `json:"customer"`
	Driver   int `json:"driver"`
}

type RatingPoint struct {
	CustomerRating float64 `json:"customer_rating"`
	DriverRating   float64 `json:"driver_rating"`
}

// QueryResult carries exactly one populated payload, named by Kind.
type QueryResult struct {
	Query     types.QueryKind
	Title     string
	Kind      ResultKind
	Chart     ChartKind
	InputRows int
	RowCount  int

	Scalar        *Scalar
	Groups        []GroupStat
	Records       []Booking
	Cancellations []CancellationRecord
	Range         *RatingRange
	Series        []DailyStat
	Split         *CancellationSplit
	Points        []RatingPoint
}

// Payload returns the populated payload, or nil for an unknown kind.
func (r QueryResult) Payload() any {
	switch r.Kind {
	case KindScalar:
		return r.Scalar
	case KindGroups:
		return nonNil(r.Groups)
	case KindRecords:
		return nonNil(r.Records)
	case KindCancellations:
		return nonNil(r.Cancellations)
	case KindRange:
		return r.Range
	case KindSeries:
		return nonNil(r.Series)
	case KindSplit:
		return r.Split
	case KindPoints:
		return nonNil(r.Points)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

type queryResultJSON struct {
	Query     types.QueryKind `json:"query"`
	Title     string          `json:"title"`
	Kind      ResultKind      `json:"kind"`
	Chart     ChartKind       `json:"chart"`
	InputRows int             `json:"input_rows"`
	RowCount  int             `json:"row_count"`
	Data      any             `json:"data"`
}

func (r QueryResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(queryResultJSON{
		Query:     r.Query,
		Title:     r.Title,
		Kind:      r.Kind,
		Chart:     r.Chart,
		InputRows: r.InputRows,
		RowCount:  r.RowCount,
		Data:      r.Payload(),
	})
}

// MenuItem is one entry of the query menu.
type MenuItem struct {
	Query types.QueryKind `json:"query"`
	Title string          `json:"title"`
}
