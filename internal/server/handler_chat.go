package server

import (
	"fmt"
	"net/http"
	"time"

	"websim2api/internal/core"
	"websim2api/internal/process"

	"github.com/gin-gonic/gin"
)

func (s *Server) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.ModelList())
}

func (s *Server) chatCompletions(c *gin.Context) {
	startTime := time.Now()

	var resp *http.Response
	defer withPanicRecoveryWithMetrics(c, s.metricsService, startTime, &resp, s.config.Logger)()
	defer trackPerformanceWithMetrics(s.metricsService, startTime)()

	var request core.ChatCompletionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, "")
		respondWithOpenAIError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, ok := s.registry.ByModality(request.Model, core.ModalityChat)
	if !ok {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, request.Model)
		respondWithOpenAIError(c, http.StatusNotFound, fmt.Sprintf("Chat model not found: %s", request.Model))
		return
	}

	payloadBytes, err := s.requestProcessor.BuildChatPayload(entry, request.Messages)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, request.Model)
		s.config.Logger.Error("Failed to build payload: %v", err)
		respondWithOpenAIError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	//nolint:bodyclose // resp.Body closed below via defer
	resp, err = s.requestProcessor.SendUpstreamRequest(c.Request.Context(), entry.UpstreamURL, payloadBytes)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, request.Model)
		s.config.Logger.Error("Upstream request failed: %v", err)
		respondWithOpenAIError(c, http.StatusBadGateway, "upstream request failed")
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errMsg := extractUpstreamErrorMessage(resp, s.config.Logger)
		recordRequestResultWithMetrics(s.metricsService, false, startTime, request.Model)
		respondWithOpenAIError(c, resp.StatusCode, errMsg)
		return
	}

	content, err := process.ParseChatReply(resp.Body)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, request.Model)
		s.config.Logger.Error("Failed to parse upstream reply: %v", err)
		respondWithOpenAIError(c, http.StatusBadGateway, "invalid upstream response")
		return
	}

	recordRequestResultWithMetrics(s.metricsService, true, startTime, request.Model)

	if request.Stream {
		writeStreamingCompletion(c, request.Model, content, s.config.Logger)
	} else {
		c.JSON(http.StatusOK, buildChatCompletionResponse(request.Model, content))
	}
}
