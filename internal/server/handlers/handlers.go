package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pricenorm/internal/service/pipeline"
)

// Handlers HTTP 请求处理器
type Handlers struct {
	runner *pipeline.Runner

	// 导出文件缓存
	exports   map[string]string
	exportsMu sync.RWMutex
}

// NewHandlers 创建处理器
func NewHandlers(runner *pipeline.Runner) *Handlers {
	return &Handlers{
		runner:  runner,
		exports: make(map[string]string),
	}
}

// Response 通用响应
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// Normalize 上传价格表并执行规范化
func (h *Handlers) Normalize(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		errorResponse(c, 1001, "请上传文件")
		return
	}
	defer file.Close()

	// 检查文件大小 (10MB)
	if header.Size > 10*1024*1024 {
		errorResponse(c, 1003, "文件过大，最大支持10MB")
		return
	}

	// 检查文件格式
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		errorResponse(c, 1002, "仅支持 .xlsx 和 .xls 格式")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		errorResponse(c, 1002, "读取文件失败")
		return
	}

	rep, out, err := h.runner.RunBytes(content, header.Filename)
	if err != nil {
		errorResponse(c, 2001, "处理失败: "+err.Error())
		return
	}
	defer out.Close()

	// 保存临时文件供下载
	exportID := uuid.New().String()
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("pricenorm_export_%s.xlsx", exportID))
	if err := out.SaveAs(tmpPath); err != nil {
		errorResponse(c, 3001, "保存失败")
		return
	}

	h.exportsMu.Lock()
	h.exports[exportID] = tmpPath
	h.exportsMu.Unlock()

	success(c, gin.H{
		"report":      rep,
		"downloadUrl": fmt.Sprintf("/api/download/%s", exportID),
	})
}

// Download 下载规范化结果
func (h *Handlers) Download(c *gin.Context) {
	exportID := c.Param("exportId")

	h.exportsMu.RLock()
	path, ok := h.exports[exportID]
	h.exportsMu.RUnlock()

	if !ok {
		c.String(http.StatusNotFound, "文件不存在或已过期")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=normalized-prices.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(path)
}
