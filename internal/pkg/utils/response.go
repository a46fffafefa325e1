package utils

import (
	"errors"
	"net/http"

	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/responses"
	"caregate-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildListResponse(w http.ResponseWriter, message string, stale bool, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Stale:   stale,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func BuildBulkResponse(w http.ResponseWriter, message string, report interface{}) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		BulkReport: report,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error("request failed",
			zap.Int("status_code", customErr.StatusCode),
			zap.String("kind", string(customErr.Kind)),
			zap.String("dev_message", customErr.DevMessage),
		)
	} else {
		log.Error("request failed", zap.Error(err))
	}

	response := responses.ResponseDTO{
		Success: false,
		Message: clientMessage,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
