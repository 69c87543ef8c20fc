package models

// Property is a single listing from the property catalog.
//
// JSON field names keep the Spanish wire format the web front end and the
// propiedades.json seed file already use, so existing clients continue to
// work unchanged.
type Property struct {
	// ID is the catalog-assigned identifier ("id_temporal" on the wire).
	ID string `json:"id_temporal"`

	Title        string  `json:"titulo"`
	Neighborhood string  `json:"barrio"`
	Price        float64 `json:"precio"`
	Rooms        int     `json:"ambientes"`
	SquareMeters float64 `json:"metros_cuadrados"`
	Description  string  `json:"descripcion"`

	// Operation is either "venta" or "alquiler".
	Operation string `json:"operacion"`

	// Type is the property kind: casa, departamento, ph, terreno,
	// oficina or casaquinta.
	Type string `json:"tipo"`

	Address         *string  `json:"direccion,omitempty"`
	Age             *int     `json:"antiguedad,omitempty"`
	Condition       *string  `json:"estado,omitempty"`
	Orientation     *string  `json:"orientacion,omitempty"`
	Expenses        *float64 `json:"expensas,omitempty"`
	Amenities       *string  `json:"amenities,omitempty"`
	Garage          *string  `json:"cochera,omitempty"`
	Balcony         *string  `json:"balcon,omitempty"`
	Pool            *string  `json:"pileta,omitempty"`
	PetsAllowed     *string  `json:"acepta_mascotas,omitempty"`
	AirConditioning *string  `json:"aire_acondicionado,omitempty"`

	// PriceCurrency defaults to USD, ExpensesCurrency to ARS.
	PriceCurrency    string `json:"moneda_precio,omitempty"`
	ExpensesCurrency string `json:"moneda_expensas,omitempty"`

	Photos    []string `json:"fotos"`
	Videos    []string `json:"videos"`
	Documents []string `json:"documentos"`
}

// Valid reports whether the listing carries every field the catalog
// requires. Seed rows failing this check are skipped, not stored.
func (p Property) Valid() bool {
	return p.Title != "" && p.Neighborhood != "" && p.Price > 0 &&
		p.Operation != "" && p.Type != ""
}
