package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adamamaa/worship/internal/journal"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// JournalHandler handles analysis history endpoints.
type JournalHandler struct {
	journal *journal.FileJournal
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(j *journal.FileJournal) *JournalHandler {
	return &JournalHandler{journal: j}
}

// List handles GET /api/v1/journal
func (h *JournalHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := h.journal.List(offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Export handles GET /api/v1/journal/export?format=csv|xlsx
func (h *JournalHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	entries, err := h.journal.All()
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	switch format {
	case "csv":
		buf.Write(journal.BOM)
		if err := journal.WriteCSV(&buf, entries); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+journal.BuildExportFilename("csv")+`"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	case "xlsx":
		if err := journal.WriteXLSX(&buf, entries); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+journal.BuildExportFilename("xlsx")+`"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
