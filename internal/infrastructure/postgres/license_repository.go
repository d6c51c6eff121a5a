package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

// licenseRowID id fixo da linha singleton (CHECK (id = 1) no schema).
const licenseRowID = 1

// LicenseRepo implementação sobre PostgreSQL da licença singleton.
type LicenseRepo struct {
	q Querier
}

// NewLicenseRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

// Get devolve a licença atual, ou nil se o sistema não foi ativado.
func (r *LicenseRepo) Get() (*entity.License, error) {
	var l entity.License
	err := r.q.QueryRow(context.Background(),
		`SELECT activation_code, expiration_date, activated_at FROM license WHERE id = $1`,
		licenseRowID,
	).Scan(&l.ActivationCode, &l.ExpirationDate, &l.ActivatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return &l, nil
}

// Save grava a licença sobrescrevendo a anterior (upsert na linha singleton).
func (r *LicenseRepo) Save(license *entity.License) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO license (id, activation_code, expiration_date, activated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE
		 SET activation_code = EXCLUDED.activation_code,
		     expiration_date = EXCLUDED.expiration_date,
		     activated_at = EXCLUDED.activated_at`,
		licenseRowID, license.ActivationCode, license.ExpirationDate, license.ActivatedAt,
	)
	if err != nil {
		return fmt.Errorf("save license: %w", err)
	}
	return nil
}

// Clear remove a licença (volta ao estado não ativado).
func (r *LicenseRepo) Clear() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM license WHERE id = $1`, licenseRowID)
	if err != nil {
		return fmt.Errorf("clear license: %w", err)
	}
	return nil
}
