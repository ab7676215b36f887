package domain

import (
	"errors"
	"time"
)

var ErrCustomerNotFound = errors.New("customer not found")

type Customer struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
