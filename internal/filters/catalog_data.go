// Package filters analyzes free-form user messages and extracts structured
// search criteria (neighborhood, property type, operation, price and size
// bounds) that the catalog can query on.
package filters

// Static filter vocabularies. Kept in sync with the listings data so the
// assistant never suggests a value the catalog cannot match.

// Neighborhoods lists the zones covered by the agency's portfolio.
var Neighborhoods = []string{
	"Parque Avellaneda",
	"Boedo",
	"Microcentro",
	"Pilar",
	"Colegiales",
	"Palermo",
	"Belgrano",
	"Recoleta",
	"Almagro",
	"Villa Crespo",
	"San Isidro",
	"Vicente Lopez",
}

// Operations lists the supported deal kinds.
var Operations = []string{
	"venta",
	"alquiler",
}

// Types lists the supported property types.
var Types = []string{
	"casa",
	"terreno",
	"departamento",
	"oficina",
	"ph",
	"casaquinta",
}
