package models

import "time"

// Contact is a captured lead from the web contact form.
//
// Timestamp is the public identifier: a millisecond-epoch string assigned
// server-side on first save. Saving the same Timestamp again updates the
// existing row (upsert) instead of failing.
type Contact struct {
	ID int64 `json:"id,omitempty"`

	Timestamp string `json:"timestamp"`

	Name             string `json:"nombre"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"telefono,omitempty"`
	PropertyInterest string `json:"propiedad_interes,omitempty"`

	// Status tracks the lead lifecycle; new contacts start as "nuevo".
	Status string `json:"estado,omitempty"`
	Notes  string `json:"notas,omitempty"`

	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`

	CreatedAt time.Time `json:"fecha_creacion,omitempty"`
	UpdatedAt time.Time `json:"fecha_actualizacion,omitempty"`
}
