package partes

import "fmt"

// Tarifas carries the two hourly rates from the empleado record.
type Tarifas struct {
	CosteHoraTrabajador float64
	CosteHoraEmpresa    float64
}

// RecalcularCostes derives both cost fields from hours x rate.
// The cost columns are never editable on their own; this runs after every
// change to the hours or the worker code so the stored values cannot drift
// from their inputs. Without a worker rate both fields stay blank.
func RecalcularCostes(horas float64, tarifas Tarifas) (costeTrabajos, costeEmpresa string) {
	if tarifas.CosteHoraTrabajador <= 0 {
		return "", ""
	}

	costeTrabajos = fmt.Sprintf("%.2f", horas*tarifas.CosteHoraTrabajador)
	costeEmpresa = fmt.Sprintf("%.2f", horas*tarifas.CosteHoraEmpresa)
	return costeTrabajos, costeEmpresa
}
