package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	appbookdetail "github.com/xiebiao/book-restful-api/internal/application/bookdetail"
	"github.com/xiebiao/book-restful-api/internal/interface/http/dto"
	"github.com/xiebiao/book-restful-api/pkg/response"
)

// BookDetailHandler 图书详情HTTP处理器
type BookDetailHandler struct {
	list   *appbookdetail.ListBookDetailsUseCase
	get    *appbookdetail.GetBookDetailUseCase
	create *appbookdetail.CreateBookDetailUseCase
	update *appbookdetail.UpdateBookDetailUseCase
	delete *appbookdetail.DeleteBookDetailUseCase
	log    *slog.Logger
}

func NewBookDetailHandler(
	list *appbookdetail.ListBookDetailsUseCase,
	get *appbookdetail.GetBookDetailUseCase,
	create *appbookdetail.CreateBookDetailUseCase,
	update *appbookdetail.UpdateBookDetailUseCase,
	del *appbookdetail.DeleteBookDetailUseCase,
	log *slog.Logger,
) *BookDetailHandler {
	return &BookDetailHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: del,
		log:    log,
	}
}

const invalidBookDetailID = "Invalid book detail ID."

// ListBookDetails 查询全部图书详情
// @Summary      图书详情列表
// @Tags         图书详情
// @Produce      json
// @Success      200 {object} response.Response{data=[]appbookdetail.BookDetailResponse}
// @Failure      500 {object} response.Response "服务器错误"
// @Router       /api/book_detail [get]
func (h *BookDetailHandler) ListBookDetails(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "Failed to retrieve book details.")
		return
	}
	response.Success(c, "Book details retrieved successfully.", list)
}

// GetBookDetail 查询单条图书详情
// @Summary      查询图书详情
// @Tags         图书详情
// @Produce      json
// @Param        id path int true "图书详情ID"
// @Success      200 {object} response.Response{data=appbookdetail.BookDetailResponse}
// @Failure      400 {object} response.Response "ID格式错误"
// @Failure      404 {object} response.Response "图书详情不存在"
// @Router       /api/book_detail/{id} [get]
func (h *BookDetailHandler) GetBookDetail(c *gin.Context) {
	id, ok := parseID(c, invalidBookDetailID)
	if !ok {
		return
	}

	d, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err, "Failed to retrieve book detail.")
		return
	}
	response.Success(c, "Book detail retrieved successfully.", d)
}

// CreateBookDetail 创建图书详情
// @Summary      创建图书详情
// @Description  genre可选；description必填且不超过1000个字符
// @Tags         图书详情
// @Accept       json
// @Produce      json
// @Param        request body dto.BookDetailRequest true "图书详情"
// @Success      201 {object} response.Response{data=appbookdetail.BookDetailResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/book_detail [post]
func (h *BookDetailHandler) CreateBookDetail(c *gin.Context) {
	var req dto.BookDetailRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.create.Execute(c.Request.Context(), req.ToApp())
	if err != nil {
		writeError(c, h.log, err, "Failed to create the book detail.")
		return
	}
	response.Created(c, "Book detail created successfully.", d)
}

// UpdateBookDetail 覆盖更新图书详情
// @Summary      更新图书详情
// @Tags         图书详情
// @Accept       json
// @Produce      json
// @Param        id path int true "图书详情ID"
// @Param        request body dto.BookDetailRequest true "图书详情"
// @Success      200 {object} response.Response{data=appbookdetail.BookDetailResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书详情不存在"
// @Router       /api/book_detail/{id} [put]
func (h *BookDetailHandler) UpdateBookDetail(c *gin.Context) {
	id, ok := parseID(c, invalidBookDetailID)
	if !ok {
		return
	}

	var req dto.BookDetailRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.update.Execute(c.Request.Context(), id, req.ToApp())
	if err != nil {
		writeError(c, h.log, err, "Failed to update the book detail.")
		return
	}
	response.Success(c, "Book detail updated successfully.", d)
}

// DeleteBookDetail 删除图书详情
// @Summary      删除图书详情
// @Tags         图书详情
// @Produce      json
// @Param        id path int true "图书详情ID"
// @Success      200 {object} response.Response{data=dto.DeleteBookDetailResponse}
// @Failure      400 {object} response.Response "ID格式错误"
// @Failure      404 {object} response.Response "图书详情不存在"
// @Router       /api/book_detail/{id} [delete]
func (h *BookDetailHandler) DeleteBookDetail(c *gin.Context) {
	id, ok := parseID(c, invalidBookDetailID)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err, "Failed to delete the book detail.")
		return
	}
	response.Success(c, "Book detail deleted successfully.", dto.DeleteBookDetailResponse{BookDetailID: id})
}
