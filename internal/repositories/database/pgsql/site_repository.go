package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nitelabs/venue_crm_app/internal/apperrors"
	portsrepo "github.com/nitelabs/venue_crm_app/internal/core/ports/repositories"
	"github.com/nitelabs/venue_crm_app/internal/models"
)

type PgxSiteRepository struct {
	BaseRepository
}

// newPgxSiteRepository creates the repository for gallery items, banners and
// site settings.
func newPgxSiteRepository(pool *pgxpool.Pool) portsrepo.SiteRepository {
	return &PgxSiteRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SiteRepository = (*PgxSiteRepository)(nil)

func (r *PgxSiteRepository) UpsertGalleryItem(ctx context.Context, item models.GalleryItem) error {
	query := `
		INSERT INTO gallery_items (item_id, venue_id, title, media_url, sort_order, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (item_id) DO UPDATE SET
			title = EXCLUDED.title,
			media_url = EXCLUDED.media_url,
			sort_order = EXCLUDED.sort_order,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		item.ItemID,
		item.VenueID,
		item.Title,
		item.MediaURL,
		item.SortOrder,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert gallery item %s: %w", item.ItemID, err)
	}
	return nil
}

func (r *PgxSiteRepository) ListGalleryItemsByVenue(ctx context.Context, venueID string) ([]models.GalleryItem, error) {
	query := `
		SELECT item_id, venue_id, title, media_url, sort_order, created_at, created_by, last_updated_at, last_updated_by
		FROM gallery_items
		WHERE venue_id = $1
		ORDER BY sort_order, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query gallery items for venue %s: %w", venueID, err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.GalleryItem, error) {
		var i models.GalleryItem
		err := row.Scan(&i.ItemID, &i.VenueID, &i.Title, &i.MediaURL, &i.SortOrder, &i.CreatedAt, &i.CreatedBy, &i.LastUpdatedAt, &i.LastUpdatedBy)
		return i, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan gallery items: %w", err)
	}
	return items, nil
}

func (r *PgxSiteRepository) DeleteGalleryItem(ctx context.Context, itemID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM gallery_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item %s: %w", itemID, err)
	}
	return nil
}

func (r *PgxSiteRepository) UpsertBanner(ctx context.Context, banner models.Banner) error {
	query := `
		INSERT INTO banners (banner_id, title, image_url, link_url, sort_order, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (banner_id) DO UPDATE SET
			title = EXCLUDED.title,
			image_url = EXCLUDED.image_url,
			link_url = EXCLUDED.link_url,
			sort_order = EXCLUDED.sort_order,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		banner.BannerID,
		banner.Title,
		banner.ImageURL,
		banner.LinkURL,
		banner.SortOrder,
		banner.IsActive,
		banner.CreatedAt,
		banner.CreatedBy,
		banner.LastUpdatedAt,
		banner.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert banner %s: %w", banner.BannerID, err)
	}
	return nil
}

func (r *PgxSiteRepository) ListBanners(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	query := `
		SELECT banner_id, title, image_url, link_url, sort_order, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM banners
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, created_at;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}
	defer rows.Close()

	banners, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Banner, error) {
		var b models.Banner
		err := row.Scan(&b.BannerID, &b.Title, &b.ImageURL, &b.LinkURL, &b.SortOrder, &b.IsActive, &b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan banners: %w", err)
	}
	return banners, nil
}

func (r *PgxSiteRepository) DeleteBanner(ctx context.Context, bannerID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM banners WHERE banner_id = $1;`, bannerID)
	if err != nil {
		return fmt.Errorf("failed to delete banner %s: %w", bannerID, err)
	}
	return nil
}

func (r *PgxSiteRepository) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	query := `
		SELECT settings_id, site_title, contact_phone, contact_email, footer_text, kakao_url, instagram_url, created_at, created_by, last_updated_at, last_updated_by
		FROM site_settings
		WHERE settings_id = $1;
	`
	var s models.SiteSettings
	err := r.Pool.QueryRow(ctx, query, models.SiteSettingsID).Scan(
		&s.SettingsID,
		&s.SiteTitle,
		&s.ContactPhone,
		&s.ContactEmail,
		&s.FooterText,
		&s.KakaoURL,
		&s.InstagramURL,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return &s, nil
}

func (r *PgxSiteRepository) UpsertSiteSettings(ctx context.Context, settings models.SiteSettings) error {
	query := `
		INSERT INTO site_settings (settings_id, site_title, contact_phone, contact_email, footer_text, kakao_url, instagram_url, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (settings_id) DO UPDATE SET
			site_title = EXCLUDED.site_title,
			contact_phone = EXCLUDED.contact_phone,
			contact_email = EXCLUDED.contact_email,
			footer_text = EXCLUDED.footer_text,
			kakao_url = EXCLUDED.kakao_url,
			instagram_url = EXCLUDED.instagram_url,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		settings.SettingsID,
		settings.SiteTitle,
		settings.ContactPhone,
		settings.ContactEmail,
		settings.FooterText,
		settings.KakaoURL,
		settings.InstagramURL,
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert site settings: %w", err)
	}
	return nil
}
