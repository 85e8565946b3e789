package schema

import "time"

// Product represents the products table - the catalog of one owner
type Product struct {
	ID                string    `gorm:"column:id;primaryKey;type:uuid"`
	OwnerID           string    `gorm:"column:owner_id;not null;type:varchar(255);index"`
	Name              string    `gorm:"column:name;not null;type:text"`
	Description       *string   `gorm:"column:description;type:text"`
	Price             float64   `gorm:"column:price;not null;type:double precision"`
	BillingType       string    `gorm:"column:billing_type;not null;type:varchar(20);default:ONE_TIME"`
	RecurringInterval *string   `gorm:"column:recurring_interval;type:varchar(20)"`
	DepositEnabled    bool      `gorm:"column:deposit_enabled;not null;default:false"`
	DepositType       *string   `gorm:"column:deposit_type;type:varchar(20)"`
	DepositValue      *float64  `gorm:"column:deposit_value;type:double precision"`
	CreatedAt         time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
