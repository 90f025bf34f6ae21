package api

import (
	"ledger/middleware"

	"github.com/gin-gonic/gin"
)

// StatisticsResponse 消费统计返回
type StatisticsResponse struct {
	Total      float64            `json:"total" example:"650.00"` // 消费总额
	ByCategory map[string]float64 `json:"by_category"`            // 类别 -> 金额之和
	ByDate     map[string]float64 `json:"by_date"`                // 日期(YYYY-MM-DD) -> 金额之和
}

// GetStatistics 获取消费统计
// @Summary 获取消费统计
// @Description 统计当前用户的消费总额、按类别汇总和按日期汇总，供前端绘制表格与图表。没有记录的类别/日期不出现在结果中，空账本总额为 0。
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=StatisticsResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses/statistics [get]
func (h *ExpenseHandler) GetStatistics(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	total, err := h.svc.Total(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}

	byCategory, err := h.svc.ByCategory(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}

	byDate, err := h.svc.ByDate(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}

	Success(c, StatisticsResponse{
		Total:      total,
		ByCategory: byCategory,
		ByDate:     byDate,
	})
}
