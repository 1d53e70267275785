package ingesting

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint calcula o digest BLAKE2b-256 dos bytes exatos recebidos.
// Não há normalização: qualquer diferença de formatação muda o resultado.
func Fingerprint(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// HasChanged indica se o conteúdo difere do último fingerprint salvo.
// Sem fingerprint anterior (primeira execução ou última sync com erro) sempre há mudança.
func HasChanged(raw []byte, previousHash string) bool {
	if previousHash == "" {
		return true
	}
	return Fingerprint(raw) != previousHash
}
