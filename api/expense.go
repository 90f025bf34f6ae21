package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"ledger/database"
	"ledger/middleware"
	"ledger/models"
	"ledger/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	svc    *service.ExpenseService
	catSvc *service.CategoryService
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{
		svc:    service.NewExpenseService(database.GetDB()),
		catSvc: service.NewCategoryService(database.GetDB()),
	}
}

// CreateExpenseRequest 创建消费记录请求
type CreateExpenseRequest struct {
	Date        string  `json:"date" example:"2024-01-15"` // 不传默认当天
	Category    string  `json:"category" binding:"required" example:"餐饮"`
	Description string  `json:"description" example:"午餐"`
	Amount      float64 `json:"amount" example:"99.99"`
}

// UpdateExpenseRequest 更新消费记录请求，未出现的字段不修改
type UpdateExpenseRequest struct {
	Date        *string  `json:"date" example:"2024-01-15"`
	Category    *string  `json:"category" example:"餐饮"`
	Description *string  `json:"description" example:"午餐"`
	Amount      *float64 `json:"amount" example:"99.99"`
}

// checkCategory 校验类别是否存在（来源于数据库）
func (h *ExpenseHandler) checkCategory(c *gin.Context, name string) bool {
	exists, err := h.catSvc.Exists(name)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询类别失败"))
		return false
	}
	if !exists {
		BadRequest(c, "无效的消费类别，请先添加该类别")
		return false
	}
	return true
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 创建一条新的消费记录，金额必须 >= 0，日期不传默认当天
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "消费记录信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		BadRequest(c, "类别不能为空")
		return
	}
	if !h.checkCategory(c, req.Category) {
		return
	}

	// 解析日期，不传则由服务层默认为当天
	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.ParseInLocation(models.DateLayout, req.Date, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
	}

	expense, err := h.svc.Add(userID, date, req.Category, req.Description, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			BadRequest(c, "金额不能为负数")
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建消费记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", expense)
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 获取当前用户的全部消费记录，按插入顺序返回
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Expense} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	expenses, err := h.svc.List(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, expenses)
}

// Get 获取单条消费记录
// @Summary 获取单条消费记录
// @Description 根据ID获取消费记录详情
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response{data=models.Expense} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	expense, err := h.svc.Get(uint(id), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, expense)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 更新指定的消费记录，只修改请求中出现的字段
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Param request body UpdateExpenseRequest true "消费记录信息"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var fields service.ExpenseUpdate
	if req.Category != nil {
		name := strings.TrimSpace(*req.Category)
		if name == "" {
			BadRequest(c, "类别不能为空")
			return
		}
		if !h.checkCategory(c, name) {
			return
		}
		fields.Category = &name
	}
	if req.Date != nil {
		date, err := time.ParseInLocation(models.DateLayout, *req.Date, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		fields.Date = &date
	}
	fields.Description = req.Description
	fields.Amount = req.Amount

	expense, err := h.svc.Update(uint(id), userID, fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			NotFound(c, "记录不存在")
		case errors.Is(err, service.ErrInvalidAmount):
			BadRequest(c, "金额不能为负数")
		default:
			InternalError(c, SafeErrorMessage(err, "更新失败"))
		}
		return
	}

	SuccessWithMessage(c, "更新成功", expense)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 删除指定的消费记录
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := h.svc.Delete(uint(id), userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
