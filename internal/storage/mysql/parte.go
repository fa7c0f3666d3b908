package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	driver "github.com/go-sql-driver/mysql"
	"react-golang/internal/storage"
)

const parteColumns = `id, numero_parte, nombre_obra, cliente, codigo_empleado, nombre_trabajador,
        email_contacto, fecha, num_velas, num_puntos_pvc, num_montaje_aparatos,
        otros_trabajos, tiempo_empleado, coste_trabajos, coste_empresa,
        estado, notas, firma, imagenes, created_at, updated_at`

// GetPartes returns every parte, newest first, matching the dashboard order.
func (s *Storage) GetPartes(ctx context.Context) ([]storage.Parte, error) {
	const op = "storage.mysql.GetPartes"

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+parteColumns+` FROM partes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var partes []storage.Parte
	for rows.Next() {
		parte, err := scanParte(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		partes = append(partes, *parte)
	}

	return partes, rows.Err()
}

func (s *Storage) GetParteByID(ctx context.Context, id int64) (*storage.Parte, error) {
	const op = "storage.mysql.GetParteByID"

	row := s.db.QueryRowContext(ctx,
		`SELECT `+parteColumns+` FROM partes WHERE id = ?`, id)

	parte, err := scanParte(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return parte, nil
}

// GetUltimoNumeroParte returns the most recently created numero_parte in the
// given two-digit year bucket. ErrNotFound means the bucket is still empty.
func (s *Storage) GetUltimoNumeroParte(ctx context.Context, yearSuffix string) (string, error) {
	const op = "storage.mysql.GetUltimoNumeroParte"

	var numero string
	err := s.db.QueryRowContext(ctx,
		`SELECT numero_parte FROM partes
         WHERE numero_parte LIKE ?
         ORDER BY created_at DESC
         LIMIT 1`, "%/"+yearSuffix).Scan(&numero)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: bucket=%s: %w", op, yearSuffix, storage.ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return numero, nil
}

func (s *Storage) SaveParte(ctx context.Context, parte storage.Parte) (int64, error) {
	const op = "storage.mysql.SaveParte"

	imagenes, err := json.Marshal(parte.Imagenes)
	if err != nil {
		return 0, fmt.Errorf("%s: marshal imagenes: %w", op, err)
	}

	res, err := s.db.ExecContext(ctx, `
        INSERT INTO partes
        (numero_parte, nombre_obra, cliente, codigo_empleado, nombre_trabajador,
         email_contacto, fecha, num_velas, num_puntos_pvc, num_montaje_aparatos,
         otros_trabajos, tiempo_empleado, coste_trabajos, coste_empresa,
         estado, notas, firma, imagenes)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		parte.NumeroParte,
		parte.NombreObra,
		parte.Cliente,
		parte.CodigoEmpleado,
		parte.NombreTrabajador,
		parte.EmailContacto,
		parte.Fecha,
		parte.NumVelas,
		parte.NumPuntosPVC,
		parte.NumMontajeAparatos,
		parte.OtrosTrabajos,
		parte.TiempoEmpleado,
		parte.CosteTrabajos,
		parte.CosteEmpresa,
		parte.Estado,
		parte.Notas,
		parte.Firma,
		imagenes,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, fmt.Errorf("%s: numero=%s: %w", op, parte.NumeroParte, storage.ErrDuplicateNumero)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

// UpdateParte rewrites every editable column. numero_parte is deliberately
// not in the statement: it is assigned once at creation and never touched again.
func (s *Storage) UpdateParte(ctx context.Context, id int64, parte storage.Parte) error {
	const op = "storage.mysql.UpdateParte"

	imagenes, err := json.Marshal(parte.Imagenes)
	if err != nil {
		return fmt.Errorf("%s: marshal imagenes: %w", op, err)
	}

	// RowsAffected is 0 both for a missing row and for a no-change update,
	// so the existence check is explicit.
	var existe int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM partes WHERE id = ?`, id).Scan(&existe)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: id=%d: %w", op, id, storage.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `
        UPDATE partes SET
            nombre_obra = ?, cliente = ?, codigo_empleado = ?, nombre_trabajador = ?,
            email_contacto = ?, fecha = ?, num_velas = ?, num_puntos_pvc = ?,
            num_montaje_aparatos = ?, otros_trabajos = ?, tiempo_empleado = ?,
            coste_trabajos = ?, coste_empresa = ?, estado = ?, notas = ?,
            firma = ?, imagenes = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?`,
		parte.NombreObra,
		parte.Cliente,
		parte.CodigoEmpleado,
		parte.NombreTrabajador,
		parte.EmailContacto,
		parte.Fecha,
		parte.NumVelas,
		parte.NumPuntosPVC,
		parte.NumMontajeAparatos,
		parte.OtrosTrabajos,
		parte.TiempoEmpleado,
		parte.CosteTrabajos,
		parte.CosteEmpresa,
		parte.Estado,
		parte.Notas,
		parte.Firma,
		imagenes,
		id,
	)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return nil
}

func (s *Storage) DeleteParte(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteParte"

	res, err := s.db.ExecContext(ctx, `DELETE FROM partes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}

type scanFunc func(dest ...any) error

func scanParte(scan scanFunc) (*storage.Parte, error) {
	var (
		parte    storage.Parte
		imagenes sql.NullString
	)

	err := scan(
		&parte.ID,
		&parte.NumeroParte,
		&parte.NombreObra,
		&parte.Cliente,
		&parte.CodigoEmpleado,
		&parte.NombreTrabajador,
		&parte.EmailContacto,
		&parte.Fecha,
		&parte.NumVelas,
		&parte.NumPuntosPVC,
		&parte.NumMontajeAparatos,
		&parte.OtrosTrabajos,
		&parte.TiempoEmpleado,
		&parte.CosteTrabajos,
		&parte.CosteEmpresa,
		&parte.Estado,
		&parte.Notas,
		&parte.Firma,
		&imagenes,
		&parte.CreatedAt,
		&parte.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imagenes.Valid && imagenes.String != "" {
		if err := json.Unmarshal([]byte(imagenes.String), &parte.Imagenes); err != nil {
			return nil, fmt.Errorf("unmarshal imagenes: %w", err)
		}
	}

	return &parte, nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *driver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
