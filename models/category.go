package models

import (
	"time"
)

// ExpenseCategory 消费类别
// 内置默认类别在数据库初始化时写入，用户新增的自定义类别同样落库持久化
type ExpenseCategory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Sort      int       `json:"sort" gorm:"default:0;index"`
	Color     string    `json:"color" gorm:"size:20;default:#64748b"` // 颜色代码，如 #ef4444
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

// 默认消费类别常量
const (
	CategoryFood      = "餐饮"
	CategoryHousing   = "住房"
	CategoryUtilities = "水电"
	CategoryTransport = "交通"
	CategoryOther     = "其他"
)

// GetDefaultCategories 获取默认消费类别
func GetDefaultCategories() []string {
	return []string{
		CategoryFood,
		CategoryHousing,
		CategoryUtilities,
		CategoryTransport,
		CategoryOther,
	}
}
