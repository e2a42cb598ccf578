package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/admin-console/internal/application/importer"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/tabular"
)

type ImportHandler struct {
	useCase importer.ImportTransactions
}

func NewImportHandler(useCase importer.ImportTransactions) *ImportHandler {
	return &ImportHandler{useCase: useCase}
}

// ImportTransactions accepts a multipart upload under the "file" part and
// runs the whole import pipeline. The response is always the run's result;
// a run that imported nothing is still a 200 with success_count zero.
func (h *ImportHandler) ImportTransactions(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "a file upload named \"file\" is required",
		}})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "could not read the uploaded file",
		}})
	}
	defer file.Close()

	result, err := h.useCase.Execute(c.Request().Context(), importer.ImportTransactionsInput{
		Filename: fileHeader.Filename,
		Reader:   file,
		Token:    tokenFrom(c),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "import failed unexpectedly",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: result})
}

// DownloadTemplate serves the generated import template with exactly the
// five expected columns and three example rows.
func (h *ImportHandler) DownloadTemplate(c echo.Context) error {
	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv":
		data, err := tabular.TemplateCSV()
		if err != nil {
			return templateError(c)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="transactions_template.csv"`)
		return c.Blob(http.StatusOK, "text/csv", data)
	case "xlsx":
		data, err := tabular.TemplateXLSX()
		if err != nil {
			return templateError(c)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="transactions_template.xlsx"`)
		return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "format must be csv or xlsx",
		}})
	}
}

func templateError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
		Code:    "internal_error",
		Message: "failed to generate template",
	}})
}
