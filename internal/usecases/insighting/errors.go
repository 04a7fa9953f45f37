package insighting

import "errors"

var (
	ErrMissingDates  = errors.New("é necessário informar as datas de início e fim")
	ErrInvalidPeriod = errors.New("a data de início não pode ser posterior à data de fim")
	ErrInvalidMode   = errors.New("modo de agrupamento inválido")
	ErrRowStore      = errors.New("falha ao ler as linhas de leads")
	ErrStaleLoad     = errors.New("carregamento substituído por outro mais recente")
)
