package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/book-restful-api/internal/application/book"
	"github.com/xiebiao/book-restful-api/internal/interface/http/dto"
	"github.com/xiebiao/book-restful-api/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooks  *appbook.ListBooksUseCase
	getBook    *appbook.GetBookUseCase
	createBook *appbook.CreateBookUseCase
	updateBook *appbook.UpdateBookUseCase
	deleteBook *appbook.DeleteBookUseCase
	log        *slog.Logger
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooks *appbook.ListBooksUseCase,
	getBook *appbook.GetBookUseCase,
	createBook *appbook.CreateBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
	log *slog.Logger,
) *BookHandler {
	return &BookHandler{
		listBooks:  listBooks,
		getBook:    getBook,
		createBook: createBook,
		updateBook: updateBook,
		deleteBook: deleteBook,
		log:        log,
	}
}

const invalidBookID = "Invalid book ID."

// ListBooks 查询全部图书
// @Summary      图书列表
// @Description  返回全部图书（按ID升序）
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]appbook.BookResponse}
// @Failure      500 {object} response.Response "服务器错误"
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	list, err := h.listBooks.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "Failed to retrieve books.")
		return
	}
	response.Success(c, "Books retrieved successfully.", list)
}

// GetBook 查询单本图书
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "ID格式错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response "服务器错误"
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c, invalidBookID)
	if !ok {
		return
	}

	b, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err, "Failed to retrieve book.")
		return
	}
	response.Success(c, "Book retrieved successfully.", b)
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  校验顺序：title → author → genre → price → published_year，返回第一个不满足的规则
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      500 {object} response.Response "服务器错误"
// @Router       /api/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.createBook.Execute(c.Request.Context(), req.ToApp())
	if err != nil {
		writeError(c, h.log, err, "Failed to create the book.")
		return
	}
	response.Created(c, "Book created successfully.", b)
}

// UpdateBook 覆盖更新图书（ID不变）
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} response.Response{data=appbook.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response "服务器错误"
// @Router       /api/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c, invalidBookID)
	if !ok {
		return
	}

	var req dto.BookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.updateBook.Execute(c.Request.Context(), id, req.ToApp())
	if err != nil {
		writeError(c, h.log, err, "Failed to update the book.")
		return
	}
	response.Success(c, "Book updated successfully.", b)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.DeleteBookResponse}
// @Failure      400 {object} response.Response "ID格式错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      500 {object} response.Response "服务器错误"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c, invalidBookID)
	if !ok {
		return
	}

	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err, "Failed to delete the book.")
		return
	}
	response.Success(c, "Book deleted successfully.", dto.DeleteBookResponse{BookID: id})
}
