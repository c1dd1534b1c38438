package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/book-restful-api/internal/application/book"
	appbookdetail "github.com/xiebiao/book-restful-api/internal/application/bookdetail"
	"github.com/xiebiao/book-restful-api/internal/application/event"
	"github.com/xiebiao/book-restful-api/internal/domain/book"
	"github.com/xiebiao/book-restful-api/internal/domain/bookdetail"
	"github.com/xiebiao/book-restful-api/internal/infrastructure/config"
	"github.com/xiebiao/book-restful-api/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/book-restful-api/internal/interface/http/handler"
	"github.com/xiebiao/book-restful-api/pkg/logger"
)

type testServer struct {
	engine http.Handler
	close  func()
}

// newTestServer 使用sqlite内存库组装完整的HTTP栈（无缓存、无事件）
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test", Swagger: true},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   ":memory:",
		},
		CORS: config.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		},
	}
	log := logger.Discard()

	db, err := rdb.NewDB(cfg, log)
	require.NoError(t, err)
	sqlDB, err := rdb.SQLDB(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	tx := rdb.NewTxManager(db)
	events := event.NoopPublisher{}

	bookSvc := book.NewService(rdb.NewBookRepository(db), tx)
	books := handler.NewBookHandler(
		appbook.NewListBooksUseCase(bookSvc),
		appbook.NewGetBookUseCase(bookSvc, appbook.NoopCache{}, log),
		appbook.NewCreateBookUseCase(bookSvc, events),
		appbook.NewUpdateBookUseCase(bookSvc, appbook.NoopCache{}, events, log),
		appbook.NewDeleteBookUseCase(bookSvc, appbook.NoopCache{}, events, log),
		log,
	)

	detailSvc := bookdetail.NewService(rdb.NewBookDetailRepository(db), tx)
	details := handler.NewBookDetailHandler(
		appbookdetail.NewListBookDetailsUseCase(detailSvc),
		appbookdetail.NewGetBookDetailUseCase(detailSvc, appbookdetail.NoopCache{}, log),
		appbookdetail.NewCreateBookDetailUseCase(detailSvc, events),
		appbookdetail.NewUpdateBookDetailUseCase(detailSvc, appbookdetail.NoopCache{}, events, log),
		appbookdetail.NewDeleteBookDetailUseCase(detailSvc, appbookdetail.NoopCache{}, events, log),
		log,
	)

	engine := New(cfg, log, handler.NewHealthHandler(sqlDB), books, details)
	return &testServer{
		engine: engine,
		close:  func() { _ = sqlDB.Close() },
	}
}

// envelope 响应Envelope（data保留原始JSON）
type envelope struct {
	TraceID      string          `json:"traceId"`
	Status       string          `json:"status"`
	Message      string          `json:"message"`
	Data         json.RawMessage `json:"data"`
	Error        *string         `json:"error"`
	ResponseDate string          `json:"responseDate"`
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func duneBook() map[string]interface{} {
	return map[string]interface{}{
		"title":          "Dune",
		"author":         "Frank Herbert",
		"genre":          "Science Fiction",
		"price":          9.99,
		"published_year": "1965",
	}
}

func decodeBook(t *testing.T, raw json.RawMessage) appbook.BookResponse {
	t.Helper()
	var b appbook.BookResponse
	require.NoError(t, json.Unmarshal(raw, &b))
	return b
}

func TestCreateBook_Dune(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/books", duneBook())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Book created successfully.", env.Message)
	assert.Nil(t, env.Error)
	assert.NotEmpty(t, env.ResponseDate)
	assert.NotEmpty(t, env.TraceID)
	assert.Equal(t, env.TraceID, w.Header().Get("X-Trace-Id"))

	created := decodeBook(t, env.Data)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Dune", created.Title)
	assert.Equal(t, 9.99, created.Price)
}

func TestCreateBook_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m map[string]interface{})
		message string
	}{
		{"年份不是4位", func(m map[string]interface{}) { m["published_year"] = "65" }, "Book published year must be a valid 4-digit year."},
		{"年份非数字", func(m map[string]interface{}) { m["published_year"] = "19a5" }, "Book published year must be a numeric value."},
		{"年份带首尾空白", func(m map[string]interface{}) { m["published_year"] = " 1965 " }, "Book published year must be a valid 4-digit year."},
		{"年份含非ASCII字符", func(m map[string]interface{}) { m["published_year"] = "196é" }, "Book published year must be a numeric value."},
		{"缺少标题和作者时报告标题", func(m map[string]interface{}) { delete(m, "title"); delete(m, "author") }, "Book title is required."},
		{"空白作者", func(m map[string]interface{}) { m["author"] = "   " }, "Book author is required."},
		{"缺少类型", func(m map[string]interface{}) { m["genre"] = "" }, "Book genre is required."},
		{"价格为0", func(m map[string]interface{}) { m["price"] = 0 }, "Book price must be a positive number."},
		{"价格为负", func(m map[string]interface{}) { m["price"] = -3.5 }, "Book price must be a positive number."},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := duneBook()
			tt.mutate(body)

			w, env := s.do(t, http.MethodPost, "/api/books", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "fail", env.Status)
			assert.Equal(t, tt.message, env.Message)
			assert.JSONEq(t, "null", string(env.Data))
		})
	}

	// 校验失败不应产生记录
	_, env := s.do(t, http.MethodGet, "/api/books", nil)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestCreateBook_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`{"title": "Dune",`, `{"price": "cheap"}`, ``} {
		w, env := s.do(t, http.MethodPost, "/api/books", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Invalid request body.", env.Message)
		require.NotNil(t, env.Error)
		assert.NotEmpty(t, *env.Error)
	}
}

// TestCreateBook_StoredAsGiven 文本字段原样保存,查询结果与输入一致
func TestCreateBook_StoredAsGiven(t *testing.T) {
	s := newTestServer(t)

	body := duneBook()
	body["title"] = " Dune "
	body["author"] = "Frank Herbert "

	w, env := s.do(t, http.MethodPost, "/api/books", body)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBook(t, env.Data)

	_, env = s.do(t, http.MethodGet, "/api/books/"+itoa(created.ID), nil)
	got := decodeBook(t, env.Data)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, " Dune ", got.Title)
	assert.Equal(t, "Frank Herbert ", got.Author)
	assert.Equal(t, "1965", got.PublishedYear)
}

// TestBookLifecycle 创建→查询→更新→删除→再次删除
func TestBookLifecycle(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodPost, "/api/books", duneBook())
	created := decodeBook(t, env.Data)
	path := "/api/books/" + itoa(created.ID)

	w, env := s.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book retrieved successfully.", env.Message)
	assert.Equal(t, created, decodeBook(t, env.Data))

	update := duneBook()
	update["id"] = 999 // 请求体中的id被忽略
	update["price"] = 15.5
	update["genre"] = "Classic"
	w, env = s.do(t, http.MethodPut, path, update)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book updated successfully.", env.Message)
	updated := decodeBook(t, env.Data)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 15.5, updated.Price)
	assert.Equal(t, "Classic", updated.Genre)

	_, env = s.do(t, http.MethodGet, path, nil)
	assert.Equal(t, updated, decodeBook(t, env.Data))

	w, env = s.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book deleted successfully.", env.Message)
	assert.JSONEq(t, `{"bookId": `+itoa(created.ID)+`}`, string(env.Data))

	w, env = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found.", env.Message)

	w, _ = s.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBook_NotFound(t *testing.T) {
	s := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		var body interface{}
		if method == http.MethodPut {
			body = duneBook()
		}
		w, env := s.do(t, method, "/api/books/4242", body)

		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, "Book not found.", env.Message)
		require.NotNil(t, env.Error)
		assert.Equal(t, "The book with ID 4242 does not exist.", *env.Error)
	}
}

func TestBook_UpdateValidatesBeforeLookup(t *testing.T) {
	s := newTestServer(t)

	body := duneBook()
	body["published_year"] = "65"
	w, env := s.do(t, http.MethodPut, "/api/books/4242", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Book published year must be a valid 4-digit year.", env.Message)
}

func TestBook_InvalidID(t *testing.T) {
	s := newTestServer(t)

	for _, id := range []string{"abc", "0", "-1", "1.5"} {
		w, env := s.do(t, http.MethodGet, "/api/books/"+id, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Equal(t, "Invalid book ID.", env.Message)
	}
}

func TestListBooks_OrderedByID(t *testing.T) {
	s := newTestServer(t)

	for _, title := range []string{"Dune", "Emma", "Ulysses"} {
		body := duneBook()
		body["title"] = title
		w, _ := s.do(t, http.MethodPost, "/api/books", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, env := s.do(t, http.MethodGet, "/api/books", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Books retrieved successfully.", env.Message)

	var list []appbook.BookResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Dune", "Emma", "Ulysses"}, []string{list[0].Title, list[1].Title, list[2].Title})
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}

func TestListBooks_DatabaseError(t *testing.T) {
	s := newTestServer(t)
	s.close()

	w, env := s.do(t, http.MethodGet, "/api/books", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to retrieve books.", env.Message)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "closed")
}

func TestBookDetailLifecycle(t *testing.T) {
	s := newTestServer(t)

	body := map[string]interface{}{
		"title":          "Dune",
		"author":         "Frank Herbert",
		"published_year": "1965",
		"description":    "A desert planet, a noble family and a precious spice.",
	}
	w, env := s.do(t, http.MethodPost, "/api/book_detail", body)
	require.Equal(t, http.StatusCreated, w.Code, "genre可选")
	assert.Equal(t, "Book detail created successfully.", env.Message)

	var created appbookdetail.BookDetailResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	path := "/api/book_detail/" + itoa(created.ID)

	w, env = s.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book detail retrieved successfully.", env.Message)

	body["genre"] = "Science Fiction"
	w, env = s.do(t, http.MethodPut, path, body)
	require.Equal(t, http.StatusOK, w.Code)
	var updated appbookdetail.BookDetailResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Science Fiction", updated.Genre)

	w, env = s.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookDetailId": `+itoa(created.ID)+`}`, string(env.Data))

	w, env = s.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book detail not found.", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, "The book detail with ID "+itoa(created.ID)+" does not exist.", *env.Error)
}

func TestBookDetail_Validation(t *testing.T) {
	s := newTestServer(t)

	body := map[string]interface{}{
		"title":          "Dune",
		"author":         "Frank Herbert",
		"published_year": "1965",
		"description":    strings.Repeat("沙", 1001),
	}
	w, env := s.do(t, http.MethodPost, "/api/book_detail", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Book detail description must not exceed 1000 characters.", env.Message)

	body["description"] = strings.Repeat("沙", 1000)
	w, _ = s.do(t, http.MethodPost, "/api/book_detail", body)
	assert.Equal(t, http.StatusCreated, w.Code, "1000个字符（按rune计）应通过")

	body["published_year"] = "196é"
	w, env = s.do(t, http.MethodPost, "/api/book_detail", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Book detail published year must be a numeric value.", env.Message)

	body["published_year"] = " 1965 "
	w, env = s.do(t, http.MethodPost, "/api/book_detail", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Book detail published year must be a valid 4-digit year.", env.Message)

	w, env = s.do(t, http.MethodGet, "/api/book_detail/x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid book detail ID.", env.Message)
}

func TestTraceID_IncomingHeaderIgnored(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.Header.Set("X-Trace-Id", "client-supplied")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.NotEqual(t, "client-supplied", env.TraceID)
	assert.Len(t, env.TraceID, 36)

	// 每个请求的trace id不同
	_, other := s.do(t, http.MethodGet, "/api/books", nil)
	assert.NotEqual(t, env.TraceID, other.TraceID)
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong","status":"healthy","database":"up"}`, string(env.Data))

	s.close()
	w, env = s.do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "fail", env.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/books", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/api/books",status="200"}`)
	assert.Contains(t, w.Body.String(), `record_operations_total{operation="list",resource="book",result="success"}`)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNoRoute(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "fail", env.Status)
	assert.NotEmpty(t, env.TraceID)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
