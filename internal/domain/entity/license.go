package entity

import "time"

// License é o registro único de ativação do sistema (linha singleton, id fixo).
// Ativar novamente sobrescreve a licença anterior.
type License struct {
	ActivationCode string
	ExpirationDate time.Time
	ActivatedAt    time.Time
}
