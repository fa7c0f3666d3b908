package mysql

import (
	"context"
	"fmt"

	"react-golang/internal/storage"
)

func (s *Storage) GetObras(ctx context.Context) ([]storage.Obra, error) {
	const op = "storage.mysql.GetObras"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, nombre FROM obras ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var obras []storage.Obra
	for rows.Next() {
		var obra storage.Obra
		if err := rows.Scan(&obra.ID, &obra.Nombre); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		obras = append(obras, obra)
	}

	return obras, rows.Err()
}
