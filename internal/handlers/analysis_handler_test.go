// internal/handlers/analysis_handler_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wordlens/internal/model"
	"wordlens/internal/service/mocks"
)

func TestAnalysisHandler_PostAnalysis(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(svc *mocks.AnalysisService)
		wantStatusCode int
		wantInBody     string
	}{
		{
			name: "returns the analysis",
			body: `{"word": "ephemeral"}`,
			setupMock: func(svc *mocks.AnalysisService) {
				svc.On("Analyze", mock.Anything, "ephemeral", false).
					Return(&model.AnalysisResponse{
						Word:         "ephemeral",
						Analysis:     "short-lived",
						AnalysisHTML: "<p>short-lived</p>",
						Cached:       true,
						UpdatedAt:    time.Now(),
					}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantInBody:     `"cached":true`,
		},
		{
			name: "force flag is passed through",
			body: `{"word": "ephemeral", "force": true}`,
			setupMock: func(svc *mocks.AnalysisService) {
				svc.On("Analyze", mock.Anything, "ephemeral", true).
					Return(&model.AnalysisResponse{Word: "ephemeral", Cached: false}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantInBody:     `"cached":false`,
		},
		{
			name:           "malformed body is a 400",
			body:           `{"word": `,
			setupMock:      func(svc *mocks.AnalysisService) {},
			wantStatusCode: http.StatusBadRequest,
			wantInBody:     "INVALID_REQUEST_BODY",
		},
		{
			name:           "missing word fails validation",
			body:           `{"force": true}`,
			setupMock:      func(svc *mocks.AnalysisService) {},
			wantStatusCode: http.StatusBadRequest,
			wantInBody:     "VALIDATION_ERROR",
		},
		{
			name: "no active template is a 400",
			body: `{"word": "ephemeral"}`,
			setupMock: func(svc *mocks.AnalysisService) {
				svc.On("Analyze", mock.Anything, "ephemeral", false).
					Return(nil, model.NewAppError("NO_ACTIVE_TEMPLATE", "No active template found.", "", model.ErrInvalidInput)).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantInBody:     "NO_ACTIVE_TEMPLATE",
		},
		{
			name: "unconfigured model is a 503",
			body: `{"word": "ephemeral"}`,
			setupMock: func(svc *mocks.AnalysisService) {
				svc.On("Analyze", mock.Anything, "ephemeral", false).
					Return(nil, model.NewAppError("LLM_NOT_CONFIGURED", "Analysis service is not configured.", "", model.ErrUnavailable)).Once()
			},
			wantStatusCode: http.StatusServiceUnavailable,
			wantInBody:     "LLM_NOT_CONFIGURED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.AnalysisService)
			tc.setupMock(mockService)
			handler := NewAnalysisHandler(mockService, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.PostAnalysis(rr, req)

			assert.Equal(t, tc.wantStatusCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantInBody)
			mockService.AssertExpectations(t)
		})
	}
}
