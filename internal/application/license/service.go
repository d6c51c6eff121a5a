package license

import (
	"crypto/subtle"
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
	"github.com/diegofsiilva/cenas-bar/pkg/config"
)

// codeDelimiter separa os campos do payload do código de ativação.
// Pipe em vez de dois-pontos: a data RFC3339 embutida contém ':'.
const codeDelimiter = "|"

// Service concentra o licenciamento: emissão de códigos, ativação e consulta.
// É injetado em quem precisa de estado de licença em vez de um global ambiente.
//
// O código de ativação é base64 de "senha-mestre|expiração|emissão": ofuscado,
// não criptografado. Quem conhece o esquema consegue forjar códigos; é um
// portão de fricção, não controle de acesso real.
type Service struct {
	repo repository.LicenseRepository
	cfg  config.LicenseConfig
}

// NewService constrói o serviço de licença.
func NewService(repo repository.LicenseRepository, cfg config.LicenseConfig) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// VerifyMasterPassword confere a senha mestre. Com hash bcrypt configurado a
// comparação usa bcrypt; senão, comparação em tempo constante com o valor puro.
// Sem senha configurada, nada passa.
func (s *Service) VerifyMasterPassword(password string) bool {
	if s.cfg.MasterPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.MasterPasswordHash), []byte(password)) == nil
	}
	if s.cfg.MasterPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.MasterPassword), []byte(password)) == 1
}

// GenerateCode emite um código de ativação válido por `days` dias.
// Exige a senha mestre correta; dias deve ser positivo.
func (s *Service) GenerateCode(masterPassword string, days int) (string, error) {
	if !s.VerifyMasterPassword(masterPassword) {
		return "", domain.ErrUnauthorized
	}
	return s.IssueCode(days)
}

// IssueCode emite um código sem reconferir a senha mestre. Para chamadores já
// autenticados (sessão administrativa).
func (s *Service) IssueCode(days int) (string, error) {
	if days <= 0 {
		return "", domain.ErrInvalidInput
	}
	now := time.Now()
	expiration := now.Add(time.Duration(days) * 24 * time.Hour)
	payload := strings.Join([]string{
		s.masterSecret(),
		expiration.Format(time.RFC3339),
		strconv.FormatInt(now.UnixMilli(), 10),
	}, codeDelimiter)
	return base64.StdEncoding.EncodeToString([]byte(payload)), nil
}

// Activate decodifica o código, valida senha embutida e expiração e persiste a
// licença sobrescrevendo a anterior. Código malformado não persiste nada.
func (s *Service) Activate(code string) (*dto.LicenseInfoResponse, error) {
	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	parts := strings.SplitN(string(raw), codeDelimiter, 3)
	if len(parts) != 3 {
		return nil, domain.ErrInvalidToken
	}
	if !s.matchesEmbeddedSecret(parts[0]) {
		return nil, domain.ErrInvalidToken
	}
	expiration, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	lic := &entity.License{
		ActivationCode: code,
		ExpirationDate: expiration,
		ActivatedAt:    time.Now(),
	}
	if err := s.repo.Save(lic); err != nil {
		return nil, err
	}
	info := infoFrom(lic)
	return &info, nil
}

// Info devolve o estado corrente da licença. Sem licença: inválida, zero dias.
func (s *Service) Info() (dto.LicenseInfoResponse, error) {
	lic, err := s.repo.Get()
	if err != nil {
		return dto.LicenseInfoResponse{}, err
	}
	if lic == nil {
		return dto.LicenseInfoResponse{IsValid: false, DaysRemaining: 0, ExpirationDate: nil}, nil
	}
	return infoFrom(lic), nil
}

// Clear remove a licença, voltando ao estado não ativado.
func (s *Service) Clear() error {
	return s.repo.Clear()
}

// WarningDays devolve o limiar configurado de alerta de expiração.
func (s *Service) WarningDays() int {
	if s.cfg.WarningDays <= 0 {
		return 7
	}
	return s.cfg.WarningDays
}

// masterSecret devolve o segredo a embutir no código (o valor puro quando
// configurado; senão o hash, que funciona como segredo opaco equivalente).
func (s *Service) masterSecret() string {
	if s.cfg.MasterPassword != "" {
		return s.cfg.MasterPassword
	}
	return s.cfg.MasterPasswordHash
}

// matchesEmbeddedSecret confere o segredo embutido no código: igualdade em
// tempo constante com o segredo de emissão, ou a própria senha mestre.
func (s *Service) matchesEmbeddedSecret(part string) bool {
	secret := s.masterSecret()
	if secret != "" && subtle.ConstantTimeCompare([]byte(secret), []byte(part)) == 1 {
		return true
	}
	return s.VerifyMasterPassword(part)
}

// infoFrom calcula dias restantes: ceil((expiração - agora) / 24h), nunca negativo.
func infoFrom(lic *entity.License) dto.LicenseInfoResponse {
	remaining := time.Until(lic.ExpirationDate)
	days := int((remaining + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
	if days < 0 {
		days = 0
	}
	exp := lic.ExpirationDate
	act := lic.ActivatedAt
	return dto.LicenseInfoResponse{
		IsValid:        days > 0,
		DaysRemaining:  days,
		ExpirationDate: &exp,
		ActivatedAt:    &act,
	}
}
