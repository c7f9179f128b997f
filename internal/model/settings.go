// internal/model/settings.go
package model

import "time"

// SettingsRowID is the fixed primary key of the singleton settings row.
const SettingsRowID uint = 1

// AppSettings is the process-wide configuration record. The CHECK constraint
// pins the primary key to SettingsRowID, so at most one row can ever exist;
// every write goes through an upsert on that row.
type AppSettings struct {
	ID               uint            `gorm:"primaryKey;check:chk_app_settings_singleton,id = 1" json:"id"`
	ActiveTemplateID *uint           `json:"active_template_id"`
	ActiveTemplate   *PromptTemplate `gorm:"foreignKey:ActiveTemplateID" json:"-"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (AppSettings) TableName() string {
	return "app_settings"
}
