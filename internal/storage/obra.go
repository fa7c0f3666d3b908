package storage

// Obra is the site list used to populate the selector in the edit form.
type Obra struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
