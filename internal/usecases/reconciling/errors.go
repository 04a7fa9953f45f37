package reconciling

import "errors"

var (
	ErrJobNotFound = errors.New("job de mesclagem não encontrado")
	ErrEmptyImport = errors.New("nenhuma linha para importar")
)
