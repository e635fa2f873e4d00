package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/openstays/marketplace-api/internal/database"
	"gorm.io/gorm"
)

// mapWriteError translates the constraint taxonomy into API errors. All
// violations are rejected synchronously; the caller decides whether to
// retry with corrected input.
func mapWriteError(err error) error {
	var cerr *database.ConstraintError
	if errors.As(err, &cerr) {
		switch {
		case errors.Is(cerr, database.ErrUniqueViolation):
			return huma.Error409Conflict(cerr.Error())
		case errors.Is(cerr, database.ErrForeignKeyViolation),
			errors.Is(cerr, database.ErrNotNullViolation),
			errors.Is(cerr, database.ErrEnumViolation):
			return huma.Error422UnprocessableEntity(cerr.Error())
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return huma.Error404NotFound("Record not found")
	}
	return huma.Error500InternalServerError("Database error: " + err.Error())
}

type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func message(msg string) *MessageResponse {
	res := &MessageResponse{}
	res.Body.Message = msg
	return res
}
