package repository

import "github.com/diegofsiilva/cenas-bar/internal/domain/entity"

// LicenseRepository define o porto de persistência para a licença singleton.
// Get devolve nil quando o sistema ainda não foi ativado.
type LicenseRepository interface {
	Get() (*entity.License, error)
	Save(license *entity.License) error
	Clear() error
}
