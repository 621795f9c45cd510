package models

import (
	"database/sql"
	"time"
)

// Usuario is a row of the usuarios table owned by the authentication service.
type Usuario struct {
	ID        int            `db:"id"`
	Nome      string         `db:"nome"`
	Email     string         `db:"email"`
	SenhaHash string         `db:"senha"`
	CPF       sql.NullString `db:"cpf"`
	Endereco  sql.NullString `db:"endereco"`
	Telefone  sql.NullString `db:"telefone"`
	CriadoEm  time.Time      `db:"criado_em"`
}
