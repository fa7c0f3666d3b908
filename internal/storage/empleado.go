package storage

// Empleado is reference data: looked up by code to fill in the worker name
// and the two hourly rates, never written from this backend.
type Empleado struct {
	Codigo              string  `json:"codigo"`
	Nombre              string  `json:"nombre"`
	CosteHoraTrabajador float64 `json:"coste_hora_trabajador"`
	CosteHoraEmpresa    float64 `json:"coste_hora_empresa"`
}
