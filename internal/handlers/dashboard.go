package handlers

import (
	"net/http"
	"strconv"
	"time"

	"agrismart/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK          = "ok"
	statusToggled     = "toggled"
	statusStopped     = "stopped"
	statusAlreadyIdle = "already_idle"
	statusSelected    = "selected"
	statusRead        = "read"
	statusModeSet     = "mode_set"
	statusRefreshed   = "refreshed"

	errUnknownChart    = "unknown chart key"
	errHistory         = "failed to load sensor history"
	errInvalidLimit    = "invalid 'limit'; use a positive integer"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include the current dashboard snapshot.
func (h *Handler) respondWithStatusAndSnapshot(c *gin.Context, status string, extra gin.H) {
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	resp["dashboard"] = h.services.Monitoring.Snapshot()
	c.JSON(http.StatusOK, resp)
}

// notificationView adds presentation hints to a feed entry.
type notificationView struct {
	models.NotificationEntry
	Icon string `json:"icon"`
	Age  string `json:"age"`
}

func toNotificationViews(entries []models.NotificationEntry, now time.Time) []notificationView {
	out := make([]notificationView, 0, len(entries))
	for _, e := range entries {
		out = append(out, notificationView{
			NotificationEntry: e,
			Icon:              e.Severity.Icon(),
			Age:               humanize.RelTime(e.CreatedAt, now, "ago", "from now"),
		})
	}
	return out
}

// SelectChartRequest is the payload for switching the analytics chart.
type SelectChartRequest struct {
	// Series key. Known keys: infection, usage
	Key string `json:"key" binding:"required" example:"usage"`
}

// AutoModeRequest is the payload for toggling auto mode.
type AutoModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required" example:"true"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Dashboard snapshot
// @Description  Sensors, weather, active chart, notifications, spray state and auto mode in one read
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardSnapshot
// @Router       /api/v1/dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Monitoring.Snapshot())
}

// @Summary      Current sensor reading
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  models.SensorReading
// @Router       /api/v1/sensors [get]
func (h *Handler) getSensors(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Telemetry.Sensor())
}

// @Summary      Sensor history
// @Description  Most recent recorded readings, newest first
// @Tags         telemetry
// @Produce      json
// @Param        limit  query  int  false  "Max readings (default 50, capped at 500)"
// @Success      200  {object}  map[string]interface{}  "count, readings"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/sensors/history [get]
func (h *Handler) getSensorHistory(c *gin.Context) {
	limit := 0
	if qs := c.Query("limit"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLimit})
			return
		}
		limit = v
	}
	readings, err := h.services.History.Readings(c.Request.Context(), limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errHistory, "sensor_history_failed", err, "limit", limit)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(readings),
		"readings": readings,
	})
}

// @Summary      Current weather
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  models.WeatherReading
// @Router       /api/v1/weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Telemetry.Weather())
}

// @Summary      Chart series
// @Tags         charts
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "active, series"
// @Router       /api/v1/charts [get]
func (h *Handler) getCharts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"active": h.services.ActiveChart(),
		"series": h.services.Charts(),
	})
}

// @Summary      Select chart
// @Description  Unknown keys leave the selection unchanged
// @Tags         charts
// @Accept       json
// @Produce      json
// @Param        body  body  SelectChartRequest  true  "Chart key"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/charts/select [post]
func (h *Handler) selectChart(c *gin.Context) {
	var req SelectChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	series, ok := h.services.SelectChart(req.Key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": errUnknownChart, "key": req.Key})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSelected, "chart": series})
}

// @Summary      Notification feed
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "unread, notifications"
// @Router       /api/v1/notifications [get]
func (h *Handler) getNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"unread":        h.services.Unread(),
		"notifications": toNotificationViews(h.services.Notifications(), time.Now()),
	})
}

// @Summary      Mark notifications read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/notifications/read [post]
func (h *Handler) markNotificationsRead(c *gin.Context) {
	h.services.MarkNotificationsRead()
	c.JSON(http.StatusOK, gin.H{"status": statusRead, "unread": h.services.Unread()})
}

// @Summary      Spray state
// @Tags         spray
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/spray [get]
func (h *Handler) getSpray(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": h.services.SprayState()})
}

// @Summary      Toggle spray
// @Description  IDLE starts a spray with automatic stop; ACTIVE stops it
// @Tags         spray
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/spray/toggle [post]
func (h *Handler) toggleSpray(c *gin.Context) {
	state := h.services.ToggleSpray()
	h.respondWithStatusAndSnapshot(c, statusToggled, gin.H{"state": state})
}

// @Summary      Stop spray
// @Tags         spray
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/spray/stop [post]
func (h *Handler) stopSpray(c *gin.Context) {
	status := statusStopped
	if !h.services.StopSpray() {
		status = statusAlreadyIdle
	}
	h.respondWithStatusAndSnapshot(c, status, gin.H{})
}

// @Summary      Auto mode
// @Tags         controls
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/v1/mode [get]
func (h *Handler) getMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"auto_mode": h.services.AutoMode()})
}

// @Summary      Set auto mode
// @Tags         controls
// @Accept       json
// @Produce      json
// @Param        body  body  AutoModeRequest  true  "Auto mode flag"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/mode/auto [put]
func (h *Handler) setAutoMode(c *gin.Context) {
	var req AutoModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	h.services.SetAutoMode(*req.Enabled)
	c.JSON(http.StatusOK, gin.H{"status": statusModeSet, "auto_mode": h.services.AutoMode()})
}

// @Summary      Refresh camera feed
// @Tags         controls
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/camera/refresh [post]
func (h *Handler) refreshCamera(c *gin.Context) {
	h.services.RefreshCamera()
	c.JSON(http.StatusOK, gin.H{"status": statusRefreshed})
}
