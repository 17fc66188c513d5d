package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "walletwise/internal/errors"
	"walletwise/internal/period"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// pathParam returns a required, non-blank path parameter.
func pathParam(c *gin.Context, name string) (string, error) {
	v := strings.TrimSpace(c.Param(name))
	if v == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing "+name)
	}
	return v, nil
}

// parseDate parses an optional request date. Blank values yield the zero
// time so the service layer can apply its default.
func parseDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	return period.ParseDate(raw, time.UTC)
}

// referenceQuery is the ?period= and ?date= pair shared by the analytics
// routes. Date is parsed separately so it can report INVALID_DATE.
type referenceQuery struct {
	Period string `form:"period" binding:"omitempty,period"`
	Date   string `form:"date"`
}

// parseReference binds the analytics query. A missing period means month and
// a missing date means now, in UTC.
func parseReference(c *gin.Context) (time.Time, period.Period, error) {
	var q referenceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return time.Time{}, "", apperrors.WithMessage(apperrors.ErrInvalidPeriod, "Unsupported period: "+c.Query("period"))
	}
	p, err := period.Parse(q.Period)
	if err != nil {
		return time.Time{}, "", err
	}

	ref := time.Now().UTC()
	if q.Date != "" {
		ref, err = period.ParseDate(q.Date, time.UTC)
		if err != nil {
			return time.Time{}, "", err
		}
	}
	return ref, p, nil
}

// respondWithError records err on the context and stops the handler chain.
// middleware.ErrorHandler turns it into the ErrorResponse body, so every
// route reports failures the same way.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// NoRoute answers unknown paths with the standard error body.
func NoRoute(c *gin.Context) {
	respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "No route for "+c.Request.Method+" "+c.Request.URL.Path))
}
