package service

import (
	"errors"
	"fmt"
	"time"

	"ledger/models"

	"gorm.io/gorm"
)

// ExpenseService 消费记录服务
// 所有操作都以 ownerID 为边界：查不到和查到别人的记录一律按不存在处理
type ExpenseService struct {
	db *gorm.DB
}

// NewExpenseService 创建消费记录服务
func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// ExpenseUpdate 更新消费记录的字段集合，nil 表示该字段不修改
type ExpenseUpdate struct {
	Date        *time.Time
	Category    *string
	Description *string
	Amount      *float64
}

// CategorySum 按类别汇总结果
type CategorySum struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DateSum 按日期汇总结果
type DateSum struct {
	Date  time.Time `json:"-"`
	Total float64   `json:"total"`
}

// truncateToDay 抹掉时分秒，只保留日期
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Add 新增消费记录
// 金额为负返回 ErrInvalidAmount；日期为零值时默认为当天
func (s *ExpenseService) Add(ownerID uint, date time.Time, category, description string, amount float64) (*models.Expense, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if date.IsZero() {
		date = time.Now()
	}

	expense := models.Expense{
		UserID:      ownerID,
		Date:        truncateToDay(date),
		Category:    category,
		Description: description,
		Amount:      amount,
	}
	if err := s.db.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("创建消费记录失败: %w", err)
	}
	return &expense, nil
}

// List 获取用户全部消费记录，按主键升序（即插入顺序）
func (s *ExpenseService) List(ownerID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", ownerID).Order("id ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("查询消费记录失败: %w", err)
	}
	return expenses, nil
}

// Get 获取单条消费记录，查不到或不属于该用户返回 ErrNotFound
func (s *ExpenseService) Get(expenseID, ownerID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, ownerID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询消费记录失败: %w", err)
	}
	return &expense, nil
}

// Update 更新消费记录的任意字段子集
// 归属校验与 Get 相同；金额为负返回 ErrInvalidAmount
func (s *ExpenseService) Update(expenseID, ownerID uint, fields ExpenseUpdate) (*models.Expense, error) {
	expense, err := s.Get(expenseID, ownerID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Amount != nil {
		if *fields.Amount < 0 {
			return nil, ErrInvalidAmount
		}
		updates["amount"] = *fields.Amount
	}
	if fields.Category != nil {
		updates["category"] = *fields.Category
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Date != nil {
		updates["date"] = truncateToDay(*fields.Date)
	}
	if len(updates) == 0 {
		return expense, nil
	}

	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("更新消费记录失败: %w", err)
	}

	// 重新获取更新后的记录
	return s.Get(expenseID, ownerID)
}

// Delete 删除消费记录（物理删除，无软删除）
func (s *ExpenseService) Delete(expenseID, ownerID uint) error {
	expense, err := s.Get(expenseID, ownerID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return fmt.Errorf("删除消费记录失败: %w", err)
	}
	return nil
}

// Total 用户全部消费金额之和，空账本返回 0
func (s *ExpenseService) Total(ownerID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.Expense{}).
		Where("user_id = ?", ownerID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("统计消费总额失败: %w", err)
	}
	return total, nil
}

// ByCategory 按类别汇总金额，没有记录的类别不出现在结果中
func (s *ExpenseService) ByCategory(ownerID uint) (map[string]float64, error) {
	var rows []CategorySum
	err := s.db.Model(&models.Expense{}).
		Select("category, SUM(amount) as total").
		Where("user_id = ?", ownerID).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("按类别统计失败: %w", err)
	}

	result := make(map[string]float64, len(rows))
	for _, row := range rows {
		result[row.Category] = row.Total
	}
	return result, nil
}

// ByDate 按日期汇总金额，键为 YYYY-MM-DD，没有记录的日期不出现在结果中
func (s *ExpenseService) ByDate(ownerID uint) (map[string]float64, error) {
	var rows []DateSum
	err := s.db.Model(&models.Expense{}).
		Select("date, SUM(amount) as total").
		Where("user_id = ?", ownerID).
		Group("date").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("按日期统计失败: %w", err)
	}

	result := make(map[string]float64, len(rows))
	for _, row := range rows {
		result[row.Date.Format(models.DateLayout)] = row.Total
	}
	return result, nil
}
