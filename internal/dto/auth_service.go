package dto

import "time"

// The types in this file are the wire contract of the authentication service.
// Field names stay in the service's own (Portuguese) vocabulary.

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// RegistrarRequest is the body of POST /api/registrar. Optional fields may be empty.
type RegistrarRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	CPF      string `json:"cpf,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

// Usuario is the identity the service returns. Login answers carry only
// id, nome, email and criado_em.
type Usuario struct {
	ID       int       `json:"id"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email"`
	CPF      *string   `json:"cpf,omitempty"`
	Endereco *string   `json:"endereco,omitempty"`
	Telefone *string   `json:"telefone,omitempty"`
	CriadoEm time.Time `json:"criado_em"`
}

// AuthServiceResponse is the envelope of every JSON answer of the service.
type AuthServiceResponse struct {
	Sucesso  bool     `json:"sucesso"`
	Mensagem string   `json:"mensagem,omitempty"`
	Usuario  *Usuario `json:"usuario,omitempty"`
}
