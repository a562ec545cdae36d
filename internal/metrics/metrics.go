package metrics

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"websim2api/internal/core"
)

// AtomicRequestStats thread-safe request statistics
type AtomicRequestStats struct {
	TotalRequests      atomic.Int64
	SuccessfulRequests atomic.Int64
	FailedRequests     atomic.Int64
	TotalResponseTime  atomic.Int64
}

// MetricsConfig configuration for MetricsService
type MetricsConfig struct {
	SaveInterval time.Duration
	HistorySize  int
	Storage      core.StorageInterface
	Logger       core.Logger
}

// MetricsService collects per-request metrics and persists them through the
// configured storage backend.
type MetricsService struct {
	atomicStats     AtomicRequestStats
	requestHistory  []core.RequestRecord
	historyMu       sync.RWMutex
	lastRequestTime time.Time
	maxHistorySize  int
	storage         core.StorageInterface
	logger          core.Logger
	lastSaveTime    time.Time
	minSaveInterval time.Duration
	recentRequests  []time.Time
	recentMu        sync.Mutex
	closeOnce       sync.Once
	closeErr        error
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(config MetricsConfig) *MetricsService {
	return &MetricsService{
		maxHistorySize:  config.HistorySize,
		storage:         config.Storage,
		logger:          config.Logger,
		minSaveInterval: config.SaveInterval,
	}
}

// RecordRequest records a request result
func (ms *MetricsService) RecordRequest(success bool, responseTime int64, model string) {
	now := time.Now()

	ms.atomicStats.TotalRequests.Add(1)
	ms.atomicStats.TotalResponseTime.Add(responseTime)
	if success {
		ms.atomicStats.SuccessfulRequests.Add(1)
	} else {
		ms.atomicStats.FailedRequests.Add(1)
	}

	ms.recentMu.Lock()
	ms.recentRequests = append(ms.pruneRecentLocked(now), now)
	ms.recentMu.Unlock()

	record := core.RequestRecord{
		Timestamp:    now,
		Success:      success,
		ResponseTime: responseTime,
		Model:        model,
	}

	ms.historyMu.Lock()
	ms.lastRequestTime = now
	ms.requestHistory = append(ms.requestHistory, record)
	if len(ms.requestHistory) > ms.maxHistorySize {
		ms.requestHistory = ms.requestHistory[len(ms.requestHistory)-ms.maxHistorySize:]
	}
	ms.historyMu.Unlock()

	ms.SaveStatsDebounced()
}

// RecordHTTPRequest records HTTP request duration
func (ms *MetricsService) RecordHTTPRequest(duration time.Duration) {
	ms.atomicStats.TotalResponseTime.Add(duration.Milliseconds())
}

// pruneRecentLocked drops entries older than one minute. Caller holds recentMu.
func (ms *MetricsService) pruneRecentLocked(now time.Time) []time.Time {
	cutoff := now.Add(-1 * time.Minute)
	startIdx := 0
	for startIdx < len(ms.recentRequests) && ms.recentRequests[startIdx].Before(cutoff) {
		startIdx++
	}
	if startIdx > 0 {
		newRecent := make([]time.Time, len(ms.recentRequests)-startIdx)
		copy(newRecent, ms.recentRequests[startIdx:])
		return newRecent
	}
	return ms.recentRequests
}

// GetQPS returns requests per second over the last minute
func (ms *MetricsService) GetQPS() float64 {
	ms.recentMu.Lock()
	defer ms.recentMu.Unlock()

	ms.recentRequests = ms.pruneRecentLocked(time.Now())
	if len(ms.recentRequests) == 0 {
		return 0
	}
	return math.Round(float64(len(ms.recentRequests))/60.0*1000) / 1000
}

// GetRequestStats returns current stats snapshot
func (ms *MetricsService) GetRequestStats() core.RequestStats {
	ms.historyMu.RLock()
	defer ms.historyMu.RUnlock()

	historyCopy := make([]core.RequestRecord, len(ms.requestHistory))
	copy(historyCopy, ms.requestHistory)

	return core.RequestStats{
		TotalRequests:      ms.atomicStats.TotalRequests.Load(),
		SuccessfulRequests: ms.atomicStats.SuccessfulRequests.Load(),
		FailedRequests:     ms.atomicStats.FailedRequests.Load(),
		TotalResponseTime:  ms.atomicStats.TotalResponseTime.Load(),
		LastRequestTime:    ms.lastRequestTime,
		RequestHistory:     historyCopy,
	}
}

// GetPeriodStats computes period statistics for multiple hour windows in a single pass.
func GetPeriodStats(history []core.RequestRecord, hourPeriods ...int) map[int]core.PeriodStats {
	if len(hourPeriods) == 0 {
		return nil
	}

	now := time.Now()
	cutoffs := make([]time.Time, len(hourPeriods))
	requests := make([]int64, len(hourPeriods))
	successful := make([]int64, len(hourPeriods))
	responseTime := make([]int64, len(hourPeriods))

	for i, hours := range hourPeriods {
		cutoffs[i] = now.Add(-time.Duration(hours) * time.Hour)
	}

	for _, record := range history {
		for i, cutoff := range cutoffs {
			if record.Timestamp.After(cutoff) {
				requests[i]++
				responseTime[i] += record.ResponseTime
				if record.Success {
					successful[i]++
				}
			}
		}
	}

	result := make(map[int]core.PeriodStats, len(hourPeriods))
	for i, hours := range hourPeriods {
		stats := core.PeriodStats{
			Requests: requests[i],
			QPS:      float64(requests[i]) / (float64(hours) * 3600.0),
		}
		if requests[i] > 0 {
			stats.SuccessRate = float64(successful[i]) / float64(requests[i]) * 100
			stats.AvgResponseTime = responseTime[i] / requests[i]
		}
		result[hours] = stats
	}
	return result
}

// LoadStats loads stats from storage
func (ms *MetricsService) LoadStats() error {
	if ms.storage == nil {
		return nil
	}
	stats, err := ms.storage.LoadStats()
	if err != nil {
		return err
	}

	ms.atomicStats.TotalRequests.Store(stats.TotalRequests)
	ms.atomicStats.SuccessfulRequests.Store(stats.SuccessfulRequests)
	ms.atomicStats.FailedRequests.Store(stats.FailedRequests)
	ms.atomicStats.TotalResponseTime.Store(stats.TotalResponseTime)

	ms.historyMu.Lock()
	ms.lastRequestTime = stats.LastRequestTime
	ms.requestHistory = stats.RequestHistory
	ms.historyMu.Unlock()

	return nil
}

// SaveStatsDebounced saves stats with debounce
func (ms *MetricsService) SaveStatsDebounced() {
	now := time.Now()
	ms.historyMu.Lock()
	if now.Sub(ms.lastSaveTime) < ms.minSaveInterval {
		ms.historyMu.Unlock()
		return
	}
	ms.lastSaveTime = now
	ms.historyMu.Unlock()

	if ms.storage == nil {
		return
	}

	stats := ms.GetRequestStats()
	if err := ms.storage.SaveStats(&stats); err != nil {
		ms.logger.Warn("Failed to save stats: %v", err)
	}
}

// Close persists final stats. Safe to call more than once.
func (ms *MetricsService) Close() error {
	ms.closeOnce.Do(func() {
		if ms.storage != nil {
			stats := ms.GetRequestStats()
			ms.closeErr = ms.storage.SaveStats(&stats)
		}
	})
	return ms.closeErr
}

// RecordSuccessWithMetrics records successful request
func RecordSuccessWithMetrics(metrics *MetricsService, startTime time.Time, model string) {
	metrics.RecordRequest(true, time.Since(startTime).Milliseconds(), model)
}

// RecordFailureWithMetrics records failed request
func RecordFailureWithMetrics(metrics *MetricsService, startTime time.Time, model string) {
	metrics.RecordRequest(false, time.Since(startTime).Milliseconds(), model)
}

var _ core.MetricsCollector = (*MetricsService)(nil)
