package models

import (
	"time"
)

// DateLayout 消费日期的统一格式（只到天）
const DateLayout = "2006-01-02"

// Expense 消费记录模型
// 每条记录归属唯一用户，金额非负，日期只取天
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	Category    string    `json:"category" gorm:"size:50;not null"`
	Description string    `json:"description" gorm:"size:255"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}
