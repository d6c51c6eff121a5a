package dto

import "time"

// ActivateLicenseRequest entrada para ativar o sistema com um código.
type ActivateLicenseRequest struct {
	ActivationCode string `json:"activationCode"`
}

// LicenseInfoResponse estado corrente da licença para a camada de apresentação.
type LicenseInfoResponse struct {
	IsValid        bool       `json:"isValid"`
	DaysRemaining  int        `json:"daysRemaining"`
	ExpirationDate *time.Time `json:"expirationDate"`
	ActivatedAt    *time.Time `json:"activatedAt,omitempty"`
}

// AdminLoginRequest entrada do login administrativo (senha mestre).
type AdminLoginRequest struct {
	MasterPassword string `json:"masterPassword"`
}

// AdminLoginResponse token de sessão administrativa.
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// GenerateCodeRequest entrada para emitir um código de ativação.
type GenerateCodeRequest struct {
	Days int `json:"days"`
}

// GenerateCodeResponse código de ativação emitido.
type GenerateCodeResponse struct {
	Code string `json:"code"`
}
