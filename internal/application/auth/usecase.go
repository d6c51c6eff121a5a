package auth

import (
	"github.com/diegofsiilva/cenas-bar/internal/application/license"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
	"github.com/diegofsiilva/cenas-bar/pkg/config"
	pkgjwt "github.com/diegofsiilva/cenas-bar/pkg/jwt"
)

// UseCase emite sessões administrativas: a senha mestre abre o painel que gera
// códigos de ativação e limpa a licença.
type UseCase struct {
	lic *license.Service
	cfg config.JWTConfig
}

// NewUseCase constrói o caso de uso.
func NewUseCase(lic *license.Service, cfg config.JWTConfig) *UseCase {
	return &UseCase{lic: lic, cfg: cfg}
}

// Login valida a senha mestre e devolve um JWT com papel admin.
func (uc *UseCase) Login(masterPassword string) (string, error) {
	if !uc.lic.VerifyMasterPassword(masterPassword) {
		return "", domain.ErrUnauthorized
	}
	return pkgjwt.Generate(uc.cfg.Secret, "admin", uc.cfg.Issuer, uc.cfg.Expiration)
}
