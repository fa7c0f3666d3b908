package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"react-golang/internal/storage"
)

func (s *Storage) GetEmpleadoByCodigo(ctx context.Context, codigo string) (*storage.Empleado, error) {
	const op = "storage.mysql.GetEmpleadoByCodigo"

	var empleado storage.Empleado
	err := s.db.QueryRowContext(ctx, `
        SELECT codigo, nombre, coste_hora_trabajador, coste_hora_empresa
        FROM empleados
        WHERE codigo = ?`, codigo).Scan(
		&empleado.Codigo,
		&empleado.Nombre,
		&empleado.CosteHoraTrabajador,
		&empleado.CosteHoraEmpresa,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: codigo=%s: %w", op, codigo, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &empleado, nil
}
