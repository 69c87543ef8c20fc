package models

// SearchFilter describes the criteria a catalog search can apply.
//
// The JSON keys mirror the filter dictionaries the web front end sends with
// /api/chat requests. Neighborhood and Barrio are intentionally separate
// fields: the front end sends "barrio" while the text detector produces
// "neighborhood", and both are honoured independently.
type SearchFilter struct {
	Neighborhood string `json:"neighborhood,omitempty"`
	Barrio       string `json:"barrio,omitempty"`

	Operation string `json:"operacion,omitempty"`
	Type      string `json:"tipo,omitempty"`

	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`

	MinRooms *int `json:"min_rooms,omitempty"`

	MinSquareMeters *float64 `json:"min_sqm,omitempty"`
	MaxSquareMeters *float64 `json:"max_sqm,omitempty"`
}

// IsEmpty reports whether no criterion is set. A chat request with an empty
// filter set skips the catalog search entirely.
func (f SearchFilter) IsEmpty() bool {
	return f.Neighborhood == "" && f.Barrio == "" &&
		f.Operation == "" && f.Type == "" &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinRooms == nil &&
		f.MinSquareMeters == nil && f.MaxSquareMeters == nil
}

// Merge overlays the non-empty fields of other on top of the receiver and
// returns the result. Used to combine front-end filters with the ones
// detected in the user's message; detected values win.
func (f SearchFilter) Merge(other SearchFilter) SearchFilter {
	merged := f

	if other.Neighborhood != "" {
		merged.Neighborhood = other.Neighborhood
	}
	if other.Barrio != "" {
		merged.Barrio = other.Barrio
	}
	if other.Operation != "" {
		merged.Operation = other.Operation
	}
	if other.Type != "" {
		merged.Type = other.Type
	}
	if other.MinPrice != nil {
		merged.MinPrice = other.MinPrice
	}
	if other.MaxPrice != nil {
		merged.MaxPrice = other.MaxPrice
	}
	if other.MinRooms != nil {
		merged.MinRooms = other.MinRooms
	}
	if other.MinSquareMeters != nil {
		merged.MinSquareMeters = other.MinSquareMeters
	}
	if other.MaxSquareMeters != nil {
		merged.MaxSquareMeters = other.MaxSquareMeters
	}

	return merged
}
