package server

import (
	"fmt"
	"net/http"
	"time"

	"websim2api/internal/core"
	"websim2api/internal/process"

	"github.com/gin-gonic/gin"
)

func (s *Server) imageGenerations(c *gin.Context) {
	startTime := time.Now()

	var resp *http.Response
	defer withPanicRecoveryWithMetrics(c, s.metricsService, startTime, &resp, s.config.Logger)()
	defer trackPerformanceWithMetrics(s.metricsService, startTime)()

	var request core.ImageGenerationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, "")
		respondWithOpenAIError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if request.Prompt == "" {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, request.Model)
		respondWithOpenAIError(c, http.StatusBadRequest, "prompt is required")
		return
	}

	// Image clients often omit the model field; route to the default image model
	var entry *core.ModelEntry
	var ok bool
	if request.Model == "" {
		entry, ok = s.registry.DefaultModel(core.ModalityImage)
	} else {
		entry, ok = s.registry.ByModality(request.Model, core.ModalityImage)
	}
	if !ok {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, request.Model)
		respondWithOpenAIError(c, http.StatusNotFound, fmt.Sprintf("Image model not found: %s", request.Model))
		return
	}

	payloadBytes, err := s.requestProcessor.BuildImagePayload(entry, request.Prompt, request.Size)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, entry.ID)
		s.config.Logger.Error("Failed to build payload: %v", err)
		respondWithOpenAIError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	//nolint:bodyclose // resp.Body closed below via defer
	resp, err = s.requestProcessor.SendUpstreamRequest(c.Request.Context(), entry.UpstreamURL, payloadBytes)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, entry.ID)
		s.config.Logger.Error("Upstream request failed: %v", err)
		respondWithOpenAIError(c, http.StatusBadGateway, "upstream request failed")
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errMsg := extractUpstreamErrorMessage(resp, s.config.Logger)
		recordRequestResultWithMetrics(s.metricsService, false, startTime, entry.ID)
		respondWithOpenAIError(c, resp.StatusCode, errMsg)
		return
	}

	imageURL, err := process.ParseImageReply(resp.Body)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, entry.ID)
		s.config.Logger.Error("Failed to parse upstream reply: %v", err)
		respondWithOpenAIError(c, http.StatusBadGateway, "invalid upstream response")
		return
	}

	recordRequestResultWithMetrics(s.metricsService, true, startTime, entry.ID)

	c.JSON(http.StatusOK, core.ImageGenerationResponse{
		Created: time.Now().Unix(),
		Data:    []core.ImageData{{URL: imageURL}},
	})
}
