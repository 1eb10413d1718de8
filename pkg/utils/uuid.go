package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID gera o identificador curto de uma execução de atualização
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 10)
}

func GenerateAuditID() string {
	return uuid.New().String()
}
