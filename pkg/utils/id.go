package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera ids curtos para registros internos (ex: sincronização)
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// NewDealID gera o identificador opaco de um deal
func NewDealID() string {
	return uuid.NewString()
}
