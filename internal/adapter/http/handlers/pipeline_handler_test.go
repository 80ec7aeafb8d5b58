package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"solar_pipeline/internal/adapter/http/handlers/mocks"
	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/domain/pipeline"
	"solar_pipeline/internal/infrastructure/export"
	"solar_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type countingRecorder struct{ n int }

func (c *countingRecorder) RecordExportCreated() { c.n++ }

func newPipelineRouter(t *testing.T, rec ExportRecorder) (*gin.Engine, *mocks.MockIClientUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewPipelineHandler(uc, rec)

	r := gin.New()
	r.GET("/v1/pipeline", h.GetBoard)
	r.GET("/v1/pipeline/export", h.ExportBoard)
	r.GET("/v1/stages", h.ListStages)
	return r, uc
}

func sampleBoard() pipeline.Board {
	return pipeline.BuildBoard([]entities.ClientRecord{
		{ID: "a", Profile: entities.Profile{Name: "Ana Silva"}},
		{ID: "b", Stage: entities.StageContract, Profile: entities.Profile{Name: "Bruno"}},
	})
}

func TestPipelineHandler_GetBoard(t *testing.T) {
	r, uc := newPipelineRouter(t, nil)
	uc.EXPECT().Board(gomock.Any()).Return(sampleBoard(), nil)

	w := doJSON(r, http.MethodGet, "/v1/pipeline", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
	assert.Contains(t, w.Body.String(), `"first_name":"Ana"`)
}

func TestPipelineHandler_ExportBoard(t *testing.T) {
	rec := &countingRecorder{}
	r, uc := newPipelineRouter(t, rec)
	uc.EXPECT().Board(gomock.Any()).Return(sampleBoard(), nil)

	w := doJSON(r, http.MethodGet, "/v1/pipeline/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "pipeline-")
	assert.Equal(t, 1, rec.n)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.ClientsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestPipelineHandler_ListStages(t *testing.T) {
	r, uc := newPipelineRouter(t, nil)
	uc.EXPECT().Stages().Return([]usecase.StageInfo{
		{Stage: entities.StageLead, Label: "Lead", Allowed: []entities.Stage{entities.StageVisit}},
	})

	w := doJSON(r, http.MethodGet, "/v1/stages", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"stage":"lead","label":"Lead","has_notes":false,"allowed":["visit"]}]`, w.Body.String())
}
