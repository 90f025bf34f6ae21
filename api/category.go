package api

import (
	"errors"

	"ledger/database"
	"ledger/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费类别处理器
type CategoryHandler struct {
	svc *service.CategoryService
}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{
		svc: service.NewCategoryService(database.GetDB()),
	}
}

// CategoryCreateRequest 创建类别请求
type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50" example:"服饰"`
	Sort  int    `json:"sort" example:"60"`
	Color string `json:"color" binding:"omitempty,max=20" example:"#a855f7"` // 颜色代码，如 #ef4444
}

// List 获取消费类别列表
// @Summary 获取消费类别列表
// @Description 获取所有可用的消费类别，按排序字段升序排列，排序相同时按ID升序
// @Tags 消费类别
// @Produce json
// @Success 200 {object} Response{data=[]models.ExpenseCategory} "获取成功"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Create 创建自定义类别
// @Summary 创建自定义消费类别
// @Description 新增一个自定义消费类别并持久化，之后可在记账时选用
// @Tags 消费类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=models.ExpenseCategory} "创建成功"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	cat, err := h.svc.Create(req.Name, req.Sort, req.Color)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateCategory) {
			BadRequest(c, "类别名称已存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", cat)
}
