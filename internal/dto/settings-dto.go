package dto

import "github.com/aarondl/null/v8"

// UpdateSiteSettingDTO — частичное обновление настроек. Поля с
// Valid=false (не переданные или null) не трогаются; пустая строка
// очищает значение.
type UpdateSiteSettingDTO struct {
	SiteName null.String `json:"site_name"`
	Tagline  null.String `json:"tagline"`
	Phone    null.String `json:"phone"`
	Email    null.String `json:"email"`
	Address  null.String `json:"address"`
	About    null.String `json:"about"`
}
