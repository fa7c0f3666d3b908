package storage

import "time"

// Estado de un parte de trabajo. Never advanced automatically, the user
// picks the value in the edit form.
const (
	EstadoPendiente  = "Pendiente"
	EstadoEnProgreso = "En progreso"
	EstadoCompletado = "Completado"
)

func ValidEstado(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoEnProgreso, EstadoCompletado:
		return true
	}
	return false
}

type Parte struct {
	ID                 int64     `json:"id"`
	NumeroParte        string    `json:"numero_parte"`
	NombreObra         string    `json:"nombre_obra"`
	Cliente            string    `json:"cliente"`
	CodigoEmpleado     string    `json:"codigo_empleado"`
	NombreTrabajador   string    `json:"nombre_trabajador"`
	EmailContacto      string    `json:"email_contacto"`
	Fecha              string    `json:"fecha"`
	NumVelas           int       `json:"num_velas"`
	NumPuntosPVC       int       `json:"num_puntos_pvc"`
	NumMontajeAparatos int       `json:"num_montaje_aparatos"`
	OtrosTrabajos      string    `json:"otros_trabajos"`
	TiempoEmpleado     float64   `json:"tiempo_empleado"`
	CosteTrabajos      string    `json:"coste_trabajos"`
	CosteEmpresa       string    `json:"coste_empresa"`
	Estado             string    `json:"estado"`
	Notas              string    `json:"notas"`
	Firma              string    `json:"firma"`
	Imagenes           []string  `json:"imagenes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
