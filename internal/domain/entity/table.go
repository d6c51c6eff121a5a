package entity

import "time"

// Table é uma mesa do salão. Uma mesa tem no máximo uma comanda aberta por vez.
type Table struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
