package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrCategoryInUse     = errors.New("categoria possui produtos vinculados")
	ErrTableOccupied     = errors.New("mesa já possui comanda aberta")
	ErrCommandClosed     = errors.New("comanda já está fechada")
	ErrEmptyCommand      = errors.New("comanda sem itens")
	ErrInvalidToken      = errors.New("código de ativação inválido")
)
