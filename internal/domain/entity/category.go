package entity

import "time"

// Category agrupa produtos do cardápio (cervejas, porções, drinks...).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
