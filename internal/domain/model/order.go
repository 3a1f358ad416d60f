package model

import "time"

// 注文。作成後は不変（更新・削除の操作は無い）。
// OrderNumber は呼び出し側が採番する orderId。一意性はストアでは保証しない。
type Order struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber        int64     `gorm:"not null;index" json:"order_id"`
	CustomerCareNumber string    `gorm:"type:varchar(64);not null" json:"customer_care_number"`
	CreatedAt          time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
