package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-integration-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-integration-api/internal/domain"
)

const (
	campaignsTable   = "fb_campaigns"
	campaignAdsTable = "fb_campaign_ads"
)

var campaignColumns = []string{
	"id", "campaign_id", "fb_ad_account_id", "name", "objective", "status", "effective_status",
	"buying_type", "daily_budget", "lifetime_budget", "budget_remaining",
	"start_time", "created_time", "updated_time",
}

type CampaignRepository interface {
	SaveCampaigns(ctx context.Context, campaigns []*domain.Campaign) ([]*domain.Campaign, error)
	SaveCampaignAds(ctx context.Context, ads []*domain.CampaignAd) ([]*domain.CampaignAd, error)
	ListByAdAccount(ctx context.Context, adAccountID string) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	db postgres.Queryer
}

func NewCampaignRepository(db postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

func (r *campaignRepository) SaveCampaigns(ctx context.Context, campaigns []*domain.Campaign) ([]*domain.Campaign, error) {
	if len(campaigns) == 0 {
		return []*domain.Campaign{}, nil
	}

	campaigns = dedupeBy(campaigns, func(c *domain.Campaign) string { return c.CampaignID })

	query, args, err := buildCampaignsUpsert(campaigns)
	if err != nil {
		return nil, err
	}

	return r.queryCampaigns(ctx, "salvar campanhas", query, args)
}

func buildCampaignsUpsert(campaigns []*domain.Campaign) (string, []any, error) {
	builder := squirrel.
		Insert(campaignsTable).
		Columns(campaignColumns[1:]...).
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range campaigns {
		builder = builder.Values(
			c.CampaignID,
			c.AdAccountID,
			c.Name,
			c.Objective,
			c.Status,
			c.EffectiveStatus,
			c.BuyingType,
			c.DailyBudget,
			c.LifetimeBudget,
			c.BudgetRemaining,
			c.StartTime,
			c.CreatedTime,
			c.UpdatedTime,
		)
	}

	return builder.Suffix(`
			ON CONFLICT (campaign_id) DO UPDATE SET
				fb_ad_account_id = EXCLUDED.fb_ad_account_id,
				name = EXCLUDED.name,
				objective = EXCLUDED.objective,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				buying_type = EXCLUDED.buying_type,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				budget_remaining = EXCLUDED.budget_remaining,
				start_time = EXCLUDED.start_time,
				created_time = EXCLUDED.created_time,
				updated_time = EXCLUDED.updated_time
			RETURNING ` + joinColumns(campaignColumns)).
		ToSql()
}

// SaveCampaignAds exige que campaign_id seja o id interno de uma campanha já persistida
func (r *campaignRepository) SaveCampaignAds(ctx context.Context, ads []*domain.CampaignAd) ([]*domain.CampaignAd, error) {
	if len(ads) == 0 {
		return []*domain.CampaignAd{}, nil
	}

	ads = dedupeBy(ads, func(a *domain.CampaignAd) string { return a.AdID })

	query, args, err := buildCampaignAdsUpsert(ads)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("salvar anúncios das campanhas", err)
	}
	defer rows.Close()

	saved := make([]*domain.CampaignAd, 0, len(ads))
	for rows.Next() {
		var ad domain.CampaignAd
		if err := rows.Scan(&ad.ID, &ad.AdID, &ad.CampaignID); err != nil {
			return nil, wrapDBError("salvar anúncios das campanhas", err)
		}
		saved = append(saved, &ad)
	}

	return saved, rows.Err()
}

func buildCampaignAdsUpsert(ads []*domain.CampaignAd) (string, []any, error) {
	builder := squirrel.
		Insert(campaignAdsTable).
		Columns("ad_id", "campaign_id").
		PlaceholderFormat(squirrel.Dollar)

	for _, ad := range ads {
		builder = builder.Values(ad.AdID, ad.CampaignID)
	}

	return builder.Suffix(`
			ON CONFLICT (ad_id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id
			RETURNING id, ad_id, campaign_id`).
		ToSql()
}

func (r *campaignRepository) ListByAdAccount(ctx context.Context, adAccountID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"fb_ad_account_id": adAccountID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryCampaigns(ctx, "listar campanhas", query, args)
}

func (r *campaignRepository) queryCampaigns(ctx context.Context, op, query string, args []any) ([]*domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(op, err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		var (
			c                                   domain.Campaign
			daily, lifetime, remaining          sql.NullInt64
			startTime, createdTime, updatedTime sql.NullTime
		)

		if err := rows.Scan(
			&c.ID,
			&c.CampaignID,
			&c.AdAccountID,
			&c.Name,
			&c.Objective,
			&c.Status,
			&c.EffectiveStatus,
			&c.BuyingType,
			&daily,
			&lifetime,
			&remaining,
			&startTime,
			&createdTime,
			&updatedTime,
		); err != nil {
			return nil, wrapDBError(op, err)
		}

		c.DailyBudget = nullInt64(daily)
		c.LifetimeBudget = nullInt64(lifetime)
		c.BudgetRemaining = nullInt64(remaining)
		c.StartTime = nullTime(startTime)
		c.CreatedTime = nullTime(createdTime)
		c.UpdatedTime = nullTime(updatedTime)

		campaigns = append(campaigns, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(op, err)
	}

	return campaigns, nil
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}

	n := v.Int64
	return &n
}
