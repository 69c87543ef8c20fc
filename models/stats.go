package models

import "time"

// FilterOptions is the body of GET /api/properties/filter-options: the
// distinct values the search form can offer, derived from the live catalog.
type FilterOptions struct {
	Neighborhoods []string `json:"barrios"`
	Types         []string `json:"tipos"`
	Total         int      `json:"total"`
}

// OperationStats aggregates the catalog for one operation (venta/alquiler).
type OperationStats struct {
	Operation string  `json:"operacion"`
	Count     int     `json:"cantidad"`
	MinPrice  float64 `json:"precio_min"`
	AvgPrice  float64 `json:"precio_promedio"`
	MaxPrice  float64 `json:"precio_max"`
}

// GroupCount is a (label, count) pair used by per-type and per-neighbourhood
// breakdowns.
type GroupCount struct {
	Label string `json:"valor"`
	Count int    `json:"cantidad"`
}

// CatalogStats is the body of GET /api/properties/stats.
type CatalogStats struct {
	Total          int              `json:"total"`
	ByOperation    []OperationStats `json:"por_operacion"`
	ByType         []GroupCount     `json:"por_tipo"`
	ByNeighborhood []GroupCount     `json:"por_barrio"`
}

// StatusCount is a contact count grouped by lifecycle status.
type StatusCount struct {
	Status string `json:"estado"`
	Count  int    `json:"cantidad"`
}

// DayCount is a contact count for one calendar day.
type DayCount struct {
	Date  string `json:"fecha"`
	Count int    `json:"cantidad"`
}

// ContactSummary is the shortened contact form used in stats listings.
type ContactSummary struct {
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// ContactStats is the body of GET /api/admin/contacts/stats.
type ContactStats struct {
	Total    int            `json:"total"`
	ByStatus []StatusCount  `json:"por_estado"`
	ByDay    []DayCount     `json:"por_dia"`
	Latest   []ContactSummary `json:"ultimos"`
}
