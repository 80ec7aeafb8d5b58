package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	response "solar_pipeline/internal/adapter/http/dto/response"
	"solar_pipeline/internal/infrastructure/export"
	"solar_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ExportRecorder counts generated workbooks.
type ExportRecorder interface {
	RecordExportCreated()
}

type noopExportRecorder struct{}

func (noopExportRecorder) RecordExportCreated() {}

// PipelineHandler serves the board, the stage list and the workbook export.
type PipelineHandler struct {
	usecase  usecase.IClientUseCase
	recorder ExportRecorder
	now      func() time.Time
}

func NewPipelineHandler(uc usecase.IClientUseCase, recorder ExportRecorder) *PipelineHandler {
	if recorder == nil {
		recorder = noopExportRecorder{}
	}
	return &PipelineHandler{usecase: uc, recorder: recorder, now: time.Now}
}

// GetBoard godoc
// @Summary      Pipeline board
// @Tags         pipeline
// @Produce      json
// @Success      200  {object}  response.BoardResponse
// @Router       /pipeline [get]
func (h *PipelineHandler) GetBoard(c *gin.Context) {
	board, err := h.usecase.Board(c.Request.Context())
	if err != nil {
		abortWithError(c, "GetBoard", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBoard(board))
}

// ExportBoard writes the board as an xlsx attachment.
//
// @Summary      Export the pipeline board as a spreadsheet
// @Description  Writes the board as an xlsx attachment.
// @Tags         pipeline
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pipeline/export [get]
func (h *PipelineHandler) ExportBoard(c *gin.Context) {
	board, err := h.usecase.Board(c.Request.Context())
	if err != nil {
		abortWithError(c, "ExportBoard", err)
		return
	}

	var buf bytes.Buffer
	if err := export.WritePipelineWorkbook(&buf, board); err != nil {
		abortWithError(c, "ExportBoard", err)
		return
	}
	h.recorder.RecordExportCreated()

	filename := fmt.Sprintf("pipeline-%s.xlsx", h.now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// ListStages godoc
// @Summary      Pipeline stages with their labels and allowed moves
// @Tags         pipeline
// @Produce      json
// @Success      200  {array}  response.StageResponse
// @Router       /stages [get]
func (h *PipelineHandler) ListStages(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStages(h.usecase.Stages()))
}
