package models

// GalleryItem is one media item in a venue's public gallery. MediaURL is an
// opaque URL returned by external file storage; uploads are out of scope.
type GalleryItem struct {
	ItemID    string `db:"item_id" json:"itemID"`
	VenueID   string `db:"venue_id" json:"venueID"`
	Title     string `db:"title" json:"title"`
	MediaURL  string `db:"media_url" json:"mediaURL"`
	SortOrder int    `db:"sort_order" json:"sortOrder"`
	AuditFields
}

// Banner is a hero banner shown on the public landing page.
type Banner struct {
	BannerID  string `db:"banner_id" json:"bannerID"`
	Title     string `db:"title" json:"title"`
	ImageURL  string `db:"image_url" json:"imageURL"`
	LinkURL   string `db:"link_url" json:"linkURL"`
	SortOrder int    `db:"sort_order" json:"sortOrder"`
	IsActive  bool   `db:"is_active" json:"isActive"`
	AuditFields
}

// SiteSettingsID is the key of the single site settings row.
const SiteSettingsID = "default"

// SiteSettings is the single-row site configuration record.
type SiteSettings struct {
	SettingsID   string `db:"settings_id" json:"settingsID"`
	SiteTitle    string `db:"site_title" json:"siteTitle"`
	ContactPhone string `db:"contact_phone" json:"contactPhone"`
	ContactEmail string `db:"contact_email" json:"contactEmail"`
	FooterText   string `db:"footer_text" json:"footerText"`
	KakaoURL     string `db:"kakao_url" json:"kakaoURL"`
	InstagramURL string `db:"instagram_url" json:"instagramURL"`
	AuditFields
}
