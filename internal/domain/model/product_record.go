package model

import "time"

// カート明細の永続ミラー
// name_key（小文字化した名前）で1商品1行。追加は数量加算、価格は初回のものを保持。
type ProductRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	NameKey   string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
