package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Sem 0/O e 1/I para o protocolo poder ser ditado por telefone
const protocolAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const protocolLength = 6

// NewProtocol gera o protocolo curto que identifica um envio de relatório
func NewProtocol() (string, error) {
	return gonanoid.Generate(protocolAlphabet, protocolLength)
}
