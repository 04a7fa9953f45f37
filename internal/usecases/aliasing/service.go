package aliasing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/infrastructure/repository"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

var (
	ErrAliasNotFound  = errors.New("alias de campanha não encontrado")
	ErrInvalidAlias   = errors.New("alias de campanha inválido")
	ErrDuplicateAlias = errors.New("origem repetida na lista de aliases")
)

type AliasManager interface {
	ListAliases() ([]domain.CampaignAlias, error)
	SaveAliases(ctx context.Context, aliases []domain.CampaignAlias) error
	DeleteAlias(source string) error
}

type Service struct {
	aliasRepo repository.CampaignAliasRepository
}

func NewService(aliasRepo repository.CampaignAliasRepository) *Service {
	return &Service{aliasRepo: aliasRepo}
}

func (s *Service) ListAliases() ([]domain.CampaignAlias, error) {
	return s.aliasRepo.ListAliases()
}

// SaveAliases grava os aliases informados; origens já cadastradas têm o nome exibido substituído
func (s *Service) SaveAliases(ctx context.Context, aliases []domain.CampaignAlias) error {
	seen := make(map[string]struct{}, len(aliases))
	for i, alias := range aliases {
		source := strings.ToLower(strings.TrimSpace(alias.Source))
		if source == "" || strings.TrimSpace(alias.DisplayName) == "" {
			return fmt.Errorf("%w: posição %d", ErrInvalidAlias, i)
		}
		if _, ok := seen[source]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateAlias, alias.Source)
		}
		seen[source] = struct{}{}
	}

	if err := s.aliasRepo.UpsertAliases(ctx, aliases); err != nil {
		return err
	}

	logrus.WithField("count", len(aliases)).Info("aliases: aliases de campanha salvos")
	return nil
}

func (s *Service) DeleteAlias(source string) error {
	deleted, err := s.aliasRepo.DeleteAlias(source)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAliasNotFound
	}
	return nil
}
