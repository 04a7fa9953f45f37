package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/leads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

const campaignAliasesTable = "campaign_aliases"

type CampaignAliasRepository interface {
	ListAliases() ([]domain.CampaignAlias, error)
	UpsertAliases(ctx context.Context, aliases []domain.CampaignAlias) error
	DeleteAlias(source string) (bool, error)
}

type campaignAliasRepository struct {
	conn *postgres.Connection
}

func NewCampaignAliasRepository(conn *postgres.Connection) CampaignAliasRepository {
	return &campaignAliasRepository{
		conn: conn,
	}
}

func (r *campaignAliasRepository) ListAliases() ([]domain.CampaignAlias, error) {
	query, args, err := squirrel.
		Select("source", "display_name", "updated_at").
		From(campaignAliasesTable).
		OrderBy("source").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar aliases de campanha: %w", err)
	}
	defer rows.Close()

	aliases := make([]domain.CampaignAlias, 0)
	for rows.Next() {
		var alias domain.CampaignAlias
		if err := rows.Scan(&alias.Source, &alias.DisplayName, &alias.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler alias de campanha: %w", err)
		}
		aliases = append(aliases, alias)
	}

	return aliases, rows.Err()
}

// UpsertAliases grava todos os aliases numa transação. A chave é a origem normalizada.
func (r *campaignAliasRepository) UpsertAliases(ctx context.Context, aliases []domain.CampaignAlias) error {
	if len(aliases) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(campaignAliasesTable).
		Columns("source", "display_name")
	for _, alias := range aliases {
		builder = builder.Values(normalizeSource(alias.Source), strings.TrimSpace(alias.DisplayName))
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (source) DO UPDATE SET display_name = EXCLUDED.display_name, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao salvar aliases de campanha: %w", err)
		}
		return nil
	})
}

func (r *campaignAliasRepository) DeleteAlias(source string) (bool, error) {
	query, args, err := squirrel.
		Delete(campaignAliasesTable).
		Where(squirrel.Eq{"source": normalizeSource(source)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover alias de campanha: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func normalizeSource(source string) string {
	return strings.ToLower(strings.TrimSpace(source))
}
