package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// propertyColumns is the scan order shared by every catalog SELECT.
var propertyColumns = []string{
	"id_temporal",
	"titulo",
	"barrio",
	"precio",
	"ambientes",
	"metros_cuadrados",
	"descripcion",
	"operacion",
	"tipo",
	"direccion",
	"antiguedad",
	"estado",
	"orientacion",
	"expensas",
	"amenities",
	"cochera",
	"balcon",
	"pileta",
	"acepta_mascotas",
	"aire_acondicionado",
	"moneda_precio",
	"moneda_expensas",
	"fotos",
	"videos",
	"documentos",
}

// buildPropertySearchQuery assembles the dynamic catalog search.
//
// Neighborhood criteria match with LIKE so partial zone names still hit;
// operation and type require exact equality. Results always come back
// cheapest first. SQLite uses ? placeholders, squirrel's default.
func buildPropertySearchQuery(filter models.SearchFilter) (string, []any, error) {
	qb := squirrel.Select(propertyColumns...).From("properties")

	if filter.Neighborhood != "" {
		qb = qb.Where(squirrel.Like{"barrio": "%" + filter.Neighborhood + "%"})
	}
	if filter.Barrio != "" {
		qb = qb.Where(squirrel.Like{"barrio": "%" + filter.Barrio + "%"})
	}
	if filter.MinPrice != nil {
		qb = qb.Where(squirrel.GtOrEq{"precio": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		qb = qb.Where(squirrel.LtOrEq{"precio": *filter.MaxPrice})
	}
	if filter.MinRooms != nil {
		qb = qb.Where(squirrel.GtOrEq{"ambientes": *filter.MinRooms})
	}
	if filter.Operation != "" {
		qb = qb.Where(squirrel.Eq{"operacion": filter.Operation})
	}
	if filter.Type != "" {
		qb = qb.Where(squirrel.Eq{"tipo": filter.Type})
	}
	if filter.MinSquareMeters != nil {
		qb = qb.Where(squirrel.GtOrEq{"metros_cuadrados": *filter.MinSquareMeters})
	}
	if filter.MaxSquareMeters != nil {
		qb = qb.Where(squirrel.LtOrEq{"metros_cuadrados": *filter.MaxSquareMeters})
	}

	return qb.OrderBy("precio ASC").ToSql()
}

// Catalog schema and aggregate queries (SQLite).
const (
	dropPropertiesTable = `DROP TABLE IF EXISTS properties;`

	createPropertiesTable = `
	CREATE TABLE properties (
		id_temporal TEXT PRIMARY KEY,
		titulo TEXT NOT NULL,
		barrio TEXT NOT NULL,
		precio REAL NOT NULL,
		ambientes INTEGER NOT NULL,
		metros_cuadrados REAL NOT NULL,
		descripcion TEXT,
		operacion TEXT NOT NULL,
		tipo TEXT NOT NULL,
		direccion TEXT,
		antiguedad INTEGER,
		estado TEXT,
		orientacion TEXT,
		expensas REAL,
		amenities TEXT,
		cochera TEXT,
		balcon TEXT,
		pileta TEXT,
		acepta_mascotas TEXT,
		aire_acondicionado TEXT,
		moneda_precio TEXT DEFAULT 'USD',
		moneda_expensas TEXT DEFAULT 'ARS',
		fotos TEXT,
		videos TEXT,
		documentos TEXT
	);`

	insertProperty = `
	INSERT INTO properties (
		id_temporal, titulo, barrio, precio, ambientes, metros_cuadrados,
		descripcion, operacion, tipo, direccion, antiguedad, estado,
		orientacion, expensas, amenities, cochera, balcon, pileta,
		acepta_mascotas, aire_acondicionado, moneda_precio, moneda_expensas,
		fotos, videos, documentos
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectDistinctNeighborhoods = `SELECT DISTINCT barrio FROM properties ORDER BY barrio;`
	selectDistinctTypes         = `SELECT DISTINCT tipo FROM properties ORDER BY tipo;`
	countProperties             = `SELECT COUNT(*) FROM properties;`

	selectStatsByOperation = `
	SELECT operacion, COUNT(*), MIN(precio), AVG(precio), MAX(precio)
	FROM properties
	GROUP BY operacion
	ORDER BY operacion;`

	selectCountByType = `
	SELECT tipo, COUNT(*)
	FROM properties
	GROUP BY tipo
	ORDER BY COUNT(*) DESC;`

	selectCountByNeighborhood = `
	SELECT barrio, COUNT(*)
	FROM properties
	GROUP BY barrio
	ORDER BY COUNT(*) DESC;`
)

// Contact and conversation queries (PostgreSQL).
const (
	contactColumns = `id, timestamp, nombre, email, telefono, propiedad_interes,
		estado, notas, ip_address, user_agent, fecha_creacion, fecha_actualizacion`

	saveContact = `
	INSERT INTO contactos (
		timestamp, nombre, email, telefono, propiedad_interes,
		estado, notas, ip_address, user_agent
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (timestamp) DO UPDATE SET
		nombre = EXCLUDED.nombre,
		email = EXCLUDED.email,
		telefono = EXCLUDED.telefono,
		propiedad_interes = EXCLUDED.propiedad_interes,
		estado = EXCLUDED.estado,
		notas = EXCLUDED.notas,
		fecha_actualizacion = NOW()
	RETURNING ` + contactColumns + `;`

	selectAllContacts = `
	SELECT ` + contactColumns + `
	FROM contactos
	ORDER BY fecha_creacion DESC;`

	selectContactByTimestamp = `
	SELECT ` + contactColumns + `
	FROM contactos
	WHERE timestamp = $1;`

	updateContact = `
	UPDATE contactos SET
		nombre = $2,
		email = $3,
		telefono = $4,
		estado = $5,
		notas = $6,
		fecha_actualizacion = NOW()
	WHERE timestamp = $1
	RETURNING ` + contactColumns + `;`

	deleteContact = `DELETE FROM contactos WHERE timestamp = $1;`

	clearContacts = `DELETE FROM contactos;`

	countContacts = `SELECT COUNT(*) FROM contactos;`

	selectContactsByStatus = `
	SELECT estado, COUNT(*) AS cantidad
	FROM contactos
	GROUP BY estado
	ORDER BY cantidad DESC;`

	selectContactsByDay = `
	SELECT DATE(fecha_creacion)::text AS fecha, COUNT(*) AS cantidad
	FROM contactos
	WHERE fecha_creacion >= CURRENT_DATE - INTERVAL '30 days'
	GROUP BY DATE(fecha_creacion)
	ORDER BY fecha DESC;`

	selectLatestContacts = `
	SELECT nombre, email, fecha_creacion
	FROM contactos
	ORDER BY fecha_creacion DESC
	LIMIT 5;`

	insertConversation = `
	INSERT INTO conversation_logs (
		timestamp, channel, user_message, bot_response,
		response_time, search_performed, results_count
	) VALUES (NOW(), $1, $2, $3, $4, $5, $6);`

	selectConversationHistory = `
	SELECT user_message, bot_response
	FROM conversation_logs
	WHERE channel = $1
	ORDER BY id DESC
	LIMIT $2;`
)
