package echo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/admin-console/internal/application/auth"
	"github.com/mohammadpnp/admin-console/internal/application/importer"
	"github.com/mohammadpnp/admin-console/internal/domain/transaction"
	httpecho "github.com/mohammadpnp/admin-console/internal/interfaces/http/echo"
)

type fakeImportUseCase struct {
	result   transaction.ImportResult
	err      error
	filename string
}

func (f *fakeImportUseCase) Execute(ctx context.Context, in importer.ImportTransactionsInput) (transaction.ImportResult, error) {
	f.filename = in.Filename
	if f.err != nil {
		return transaction.ImportResult{}, f.err
	}
	return f.result, nil
}

type allowAll struct{}

func (allowAll) Authorize(ctx context.Context, userID string) (auth.Decision, error) {
	return auth.DecisionGranted, nil
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestImportHandlerSuccess(t *testing.T) {
	t.Parallel()

	e := echo.New()
	useCase := &fakeImportUseCase{result: transaction.ImportResult{SuccessCount: 2, Errors: []string{"Row 4: user not found for email ghost@example.com"}}}
	h := httpecho.NewImportHandler(useCase)
	e.POST("/import", h.ImportTransactions)

	body, contentType := multipartBody(t, "transactions.csv", "email,date,amount,type,status\n")
	req := httptest.NewRequest(http.MethodPost, "/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if useCase.filename != "transactions.csv" {
		t.Fatalf("filename not forwarded: %q", useCase.filename)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	data, ok := got["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %#v", got["data"])
	}
	if data["success_count"] != float64(2) {
		t.Fatalf("unexpected success_count: %#v", data["success_count"])
	}
}

func TestImportHandlerMissingFile(t *testing.T) {
	t.Parallel()

	e := echo.New()
	h := httpecho.NewImportHandler(&fakeImportUseCase{})
	e.POST("/import", h.ImportTransactions)

	req := httptest.NewRequest(http.MethodPost, "/import", bytes.NewReader(nil))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDownloadTemplateCSV(t *testing.T) {
	t.Parallel()

	e := echo.New()
	h := httpecho.NewImportHandler(&fakeImportUseCase{})
	e.GET("/template", h.DownloadTemplate)

	req := httptest.NewRequest(http.MethodGet, "/template", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "text/csv" {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected template bytes")
	}
}

func TestDownloadTemplateUnknownFormat(t *testing.T) {
	t.Parallel()

	e := echo.New()
	h := httpecho.NewImportHandler(&fakeImportUseCase{})
	e.GET("/template", h.DownloadTemplate)

	req := httptest.NewRequest(http.MethodGet, "/template?format=pdf", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
