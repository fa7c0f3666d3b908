package partes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"react-golang/internal/storage"
)

var (
	// ErrFirmaRequerida blocks submission before any store call is made.
	ErrFirmaRequerida = errors.New("el parte necesita una firma")

	ErrEstadoInvalido = errors.New("estado no válido")
)

// Two concurrent creates can both read the same last numero; the unique
// index rejects the loser and we re-read and try again.
const maxNumeroIntentos = 3

type ParteStorage interface {
	GetUltimoNumeroParte(ctx context.Context, yearSuffix string) (string, error)
	SaveParte(ctx context.Context, parte storage.Parte) (int64, error)
	UpdateParte(ctx context.Context, id int64, parte storage.Parte) error
	DeleteParte(ctx context.Context, id int64) error
	GetEmpleadoByCodigo(ctx context.Context, codigo string) (*storage.Empleado, error)
}

type ParteService struct {
	storage ParteStorage
	now     func() time.Time
}

func NewParteService(storage ParteStorage) *ParteService {
	return &ParteService{storage: storage, now: time.Now}
}

// CreateParte validates the record, stamps it with a fresh numero_parte and
// Pendiente status, and inserts it. The numero is assigned exactly once here;
// no later edit recomputes it.
func (s *ParteService) CreateParte(ctx context.Context, parte storage.Parte) (int64, string, error) {
	const op = "service.partes.CreateParte"

	if parte.Firma == "" {
		return 0, "", ErrFirmaRequerida
	}
	parte.Estado = storage.EstadoPendiente

	if err := s.aplicarEmpleado(ctx, &parte); err != nil {
		return 0, "", fmt.Errorf("%s: %w", op, err)
	}

	yearSuffix := YearSuffix(s.now())

	for intento := 0; intento < maxNumeroIntentos; intento++ {
		ultimo, err := s.storage.GetUltimoNumeroParte(ctx, yearSuffix)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return 0, "", fmt.Errorf("%s: %w", op, err)
		}

		numero, err := NextNumero(ultimo, yearSuffix)
		if err != nil {
			return 0, "", fmt.Errorf("%s: %w", op, err)
		}
		parte.NumeroParte = numero

		id, err := s.storage.SaveParte(ctx, parte)
		if errors.Is(err, storage.ErrDuplicateNumero) {
			continue
		}
		if err != nil {
			return 0, "", fmt.Errorf("%s: %w", op, err)
		}

		return id, numero, nil
	}

	return 0, "", fmt.Errorf("%s: numero agotado tras %d intentos: %w",
		op, maxNumeroIntentos, storage.ErrDuplicateNumero)
}

// UpdateParte rewrites the editable fields of an existing parte. The derived
// cost fields are recomputed here regardless of what the client sent, and the
// image list is taken as submitted (the form keeps insertion order and
// removals client-side).
func (s *ParteService) UpdateParte(ctx context.Context, id int64, parte storage.Parte) error {
	const op = "service.partes.UpdateParte"

	if parte.Firma == "" {
		return ErrFirmaRequerida
	}
	if !storage.ValidEstado(parte.Estado) {
		return fmt.Errorf("%s: %q: %w", op, parte.Estado, ErrEstadoInvalido)
	}

	if err := s.aplicarEmpleado(ctx, &parte); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdateParte(ctx, id, parte); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ParteService) DeleteParte(ctx context.Context, id int64) error {
	const op = "service.partes.DeleteParte"

	if err := s.storage.DeleteParte(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// aplicarEmpleado resolves the worker code into the read-only derived fields:
// the worker name and both costs. An unknown code clears them, mirroring the
// form behaviour; only real lookup failures propagate.
func (s *ParteService) aplicarEmpleado(ctx context.Context, parte *storage.Parte) error {
	empleado, err := s.storage.GetEmpleadoByCodigo(ctx, parte.CodigoEmpleado)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			parte.NombreTrabajador = ""
			parte.CosteTrabajos = ""
			parte.CosteEmpresa = ""
			return nil
		}
		return err
	}

	parte.NombreTrabajador = empleado.Nombre
	parte.CosteTrabajos, parte.CosteEmpresa = RecalcularCostes(parte.TiempoEmpleado, Tarifas{
		CosteHoraTrabajador: empleado.CosteHoraTrabajador,
		CosteHoraEmpresa:    empleado.CosteHoraEmpresa,
	})

	return nil
}
