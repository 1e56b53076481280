package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	stateLength = 32
)

// GenerateState gera o nonce usado no parâmetro state do OAuth
func GenerateState() (string, error) {
	return gonanoid.Generate(characters, stateLength)
}
