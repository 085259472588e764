package models

import "time"

// KPIs is the metric tile row shown above the dashboard and overview.
type KPIs struct {
	TotalRides      int      `json:"total_rides"`
	SuccessfulRides int      `json:"successful_rides"`
	CancelledRides  int      `json:"cancelled_rides"`
	Revenue         float64  `json:"revenue"`
	AvgDriverRating *float64 `json:"avg_driver_rating"`
}

type Dashboard struct {
	Filter      FilterConfig  `json:"filter"`
	KPIs        KPIs          `json:"kpis"`
	Panels      []QueryResult `json:"panels"`
	GeneratedAt time.Time     `json:"generated_at"`
}

type DatasetInfo struct {
	Source
	Rows    int       `json:"rows"`
	Columns []Column  `json:"columns"`
	From    time.Time `json:"from,omitzero"`
	To      time.Time `json:"to,omitzero"`
}

type Overview struct {
	Dataset     DatasetInfo `json:"dataset"`
	KPIs        KPIs        `json:"kpis"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// Report bundles every menu query with the default dashboard.
type Report struct {
	Dataset     DatasetInfo   `json:"dataset"`
	Queries     []QueryResult `json:"queries"`
	Dashboard   Dashboard     `json:"dashboard"`
	GeneratedAt time.Time     `json:"generated_at"`
}
