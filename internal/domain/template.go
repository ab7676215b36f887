package domain

import (
	"errors"
	"time"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrMailDelivery     = errors.New("mail delivery failed")
)

type Template struct {
	ID        string
	Name      string
	Subject   string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
