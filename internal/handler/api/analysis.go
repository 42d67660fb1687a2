package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"FxPulse/internal/domain/models"
	"FxPulse/internal/service/ratelimit"
	"FxPulse/internal/usecase"
	xhttp "FxPulse/pkg/http"
	xlogger "FxPulse/pkg/logger"
)

const maxCSVBytes = 1 << 20

// AnalysisHandler serves the analysis API over echo.
type AnalysisHandler struct {
	logger  *xlogger.Logger
	uc      *usecase.AnalysisUseCase
	limiter *ratelimit.Limiter
}

func NewAnalysisHandler(logger *xlogger.Logger, uc *usecase.AnalysisUseCase, limiter *ratelimit.Limiter) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, uc: uc, limiter: limiter}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/universe", h.Universe)
	g.POST("/rates", h.Rates)

	var mw []echo.MiddlewareFunc
	if h.limiter != nil {
		mw = append(mw, h.limiter.Middleware())
	}
	a := g.Group("/analysis", mw...)
	a.POST("", h.Analyze)
	a.POST("/csv", h.AnalyzeCSV)
	a.POST("/live", h.AnalyzeLive)
}

// Analyze runs the pipeline over manually entered rows.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.uc.AnalyzeInputs(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "analysis", err)
	}
	return xhttp.SuccessResponse(c, res)
}

// AnalyzeCSV runs the pipeline over a raw sheet export in the request body.
func (h *AnalysisHandler) AnalyzeCSV(c echo.Context) error {
	corroborate, err := corroborateParam(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxCSVBytes+1))
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("could not read request body"))
	}
	if len(body) > maxCSVBytes {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("csv body is too large").WithParam("max", maxCSVBytes))
	}
	res, err := h.uc.AnalyzeCSV(c.Request().Context(), body, corroborate)
	if err != nil {
		return h.fail(c, "csv analysis", err)
	}
	return xhttp.SuccessResponse(c, res)
}

// AnalyzeLive fetches the configured sheet and analyzes it.
func (h *AnalysisHandler) AnalyzeLive(c echo.Context) error {
	corroborate, err := corroborateParam(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}
	res, err := h.uc.AnalyzeLive(c.Request().Context(), corroborate)
	if err != nil {
		return h.fail(c, "live analysis", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) Universe(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.uc.Universe())
}

// Rates returns the cross-rate ticker for the posted rows.
func (h *AnalysisHandler) Rates(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	rates, err := h.uc.Rates(req)
	if err != nil {
		return h.fail(c, "rates", err)
	}
	return xhttp.SuccessResponse(c, rates)
}

func (h *AnalysisHandler) fail(c echo.Context, op string, err error) error {
	appErr := toAppError(err)
	if appErr.Status >= 500 {
		h.logger.Error(op+" failed", xlogger.Error(err))
	} else {
		h.logger.Warn(op+" rejected", xlogger.Error(err))
	}
	return xhttp.AppErrorResponse(c, appErr)
}

// corroborateParam reads the optional ?corroborate= flag. Absent means true.
func corroborateParam(c echo.Context) (bool, error) {
	v := true
	if err := echo.QueryParamsBinder(c).Bool("corroborate", &v).BindError(); err != nil {
		return false, fmt.Errorf("corroborate must be a boolean")
	}
	return v, nil
}

func toAppError(err error) *xhttp.AppError {
	switch {
	case errors.Is(err, models.ErrRunInProgress):
		return xhttp.ConflictError(models.ErrRunInProgress.Error()).WithError(err)
	case errors.Is(err, models.ErrCredentialMissing):
		return xhttp.ServiceUnavailableError("corroboration is not configured").WithError(err)
	case errors.Is(err, models.ErrUpstream):
		return xhttp.BadGatewayError("upstream service failed, try again later").WithError(err)
	case errors.Is(err, models.ErrNoData):
		return xhttp.NewAppError("ERR_NO_DATA", "", models.ErrNoData.Error(), http.StatusBadRequest).WithError(err)
	case errors.Is(err, models.ErrParse):
		return xhttp.BadRequestError(err.Error()).WithError(err)
	default:
		return xhttp.InternalError("analysis failed").WithError(err)
	}
}
