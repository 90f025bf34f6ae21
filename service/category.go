package service

import (
	"errors"
	"fmt"
	"strings"

	"ledger/models"

	"gorm.io/gorm"
)

// CategoryService 消费类别服务
// 默认类别由数据库初始化写入，此处负责查询与用户自定义类别的持久化
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService 创建类别服务
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// ErrDuplicateCategory 类别名称已存在
var ErrDuplicateCategory = errors.New("类别名称已存在")

// List 列出全部类别，按排序值升序，排序相同按 ID 升序
func (s *CategoryService) List() ([]models.ExpenseCategory, error) {
	var list []models.ExpenseCategory
	if err := s.db.Order("sort ASC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("查询类别失败: %w", err)
	}
	return list, nil
}

// Exists 判断类别名称是否存在
func (s *CategoryService) Exists(name string) (bool, error) {
	var cat models.ExpenseCategory
	err := s.db.Where("name = ?", name).First(&cat).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("查询类别失败: %w", err)
}

// Create 新增自定义类别，名称重复返回 ErrDuplicateCategory
func (s *CategoryService) Create(name string, sort int, color string) (*models.ExpenseCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("名称不能为空")
	}

	var existing models.ExpenseCategory
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateCategory
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询类别失败: %w", err)
	}

	if color == "" {
		color = "#64748b" // 默认灰色
	}
	cat := models.ExpenseCategory{Name: name, Sort: sort, Color: color}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, fmt.Errorf("创建类别失败: %w", err)
	}
	return &cat, nil
}
