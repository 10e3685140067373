package reply

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"lootvalue/pkg/contextx"
	"lootvalue/pkg/errcodes"
	"lootvalue/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code errcodes.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	code, kind, description := errcodes.Of(err)

	response := errorResponse{
		Code:      code.String(),
		Message:   description,
		SupportID: supportID(ctx),
	}

	switch kind {
	case errcodes.KindInvalidArgument:
		logger(ctx).Warn("invalid request", logx.Error(err))
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case errcodes.KindNotFound:
		logger(ctx).Warn("not found", logx.Error(err))
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case errcodes.KindForbidden:
		logger(ctx).Warn("forbidden", logx.Error(err))
		response.WithDefaultCode(errcodes.Forbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	case errcodes.KindUnprocessable:
		logger(ctx).Warn("unprocessable", logx.Error(err))
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		logger(ctx).Error("error", logx.Error(err))
		response.WithDefaultCode(errcodes.InternalServerError)
		response.Message = ""
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
